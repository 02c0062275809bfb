package movieitem

import (
	"html/template"
	"io"
	"strings"
)

// The star widget is display-only: it never reads a rating from the payload.
const (
	RatingStars = 5
	RatingSize  = "24px"
	RatingColor = "#ffd700"

	LoadingText = "Loading..."
	FailedText  = "Sorry, this movie could not be loaded."
)

type ratingView struct {
	Stars []int
	Size  string
	Color string
}

type view struct {
	Phase    string
	Movie    *Movie
	CoverSrc any
	Loading  string
	Failed   string
	Rating   *ratingView
}

var itemTemplate = template.Must(template.New("movie-item").Parse(
	`{{- if eq .Phase "loaded" -}}
<div class="movie-container">
  <img class="movie-cover" src="{{.CoverSrc}}">
  <div class="movie-info">
    <h1>{{.Movie.Title}}</h1>
    <p>{{.Movie.Desc}}</p>
    {{- with .Rating}}
    <div class="star-rating" data-count="{{len .Stars}}" style="font-size: {{.Size}}; color: {{.Color}};">
      {{- range .Stars}}<span class="star" data-value="{{.}}">&#9733;</span>{{end -}}
    </div>
    {{- end}}
  </div>
</div>
{{- else if eq .Phase "failed" -}}
<div class="movie-error" role="alert">{{.Failed}}</div>
{{- else -}}
<div class="movie-loading">{{.Loading}}</div>
{{- end}}
`))

func newRatingView() *ratingView {
	stars := make([]int, RatingStars)
	for i := range stars {
		stars[i] = i + 1
	}
	return &ratingView{Stars: stars, Size: RatingSize, Color: RatingColor}
}

// coverSrc lets inline data:image/ covers through html/template, which
// otherwise only passes http, https and mailto URLs. Everything else still
// goes through the normal URL filter.
func coverSrc(cover string) any {
	if strings.HasPrefix(strings.ToLower(cover), "data:image/") {
		return template.URL(cover)
	}
	return cover
}

func render(w io.Writer, s State, opts Options) error {
	v := view{
		Phase:   s.Phase.String(),
		Movie:   s.Movie,
		Loading: LoadingText,
		Failed:  FailedText,
	}
	if s.Movie != nil {
		v.CoverSrc = coverSrc(s.Movie.CoverImg)
	}
	if s.Phase == Loaded && opts.ShowRating {
		v.Rating = newRatingView()
	}
	return itemTemplate.Execute(w, v)
}
