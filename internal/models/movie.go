package models

import (
	"time"
)

type Movie struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CoverImg  string    `gorm:"column:cover_img" json:"cover_img" example:"https://img1.doubanio.com/view/photo/s_ratio_poster/public/p2516578307.webp"`
	Title     string    `gorm:"column:title" json:"title" example:"Ready Player One (2018)"`
	Desc      string    `gorm:"column:desc;type:text" json:"desc" example:"In 2045, the real world is decaying..."`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}
