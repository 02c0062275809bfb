package handlers

type MovieRequest struct {
	CoverImg string `json:"cover_img" example:"https://img1.doubanio.com/view/photo/s_ratio_poster/public/p2516914607.webp"`
	Title    string `json:"title" example:"湮灭 Annihilation (2018)"`
	Desc     string `json:"desc" example:"莉娜是一名生物学家..."`
}
