// Package seed provides the sample movie records inserted into an empty store.
package seed

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode/utf8"

	"movie-demo/internal/models"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/unicode/norm"
)

//go:embed movies.yaml
var defaultMovies []byte

type movieEntry struct {
	CoverImg string `yaml:"cover_img"`
	Title    string `yaml:"title"`
	Desc     string `yaml:"desc"`
}

type seedFile struct {
	Movies []movieEntry `yaml:"movies"`
}

// Movies returns the embedded sample records in file order.
func Movies() ([]models.Movie, error) {
	return Parse(defaultMovies)
}

// Parse decodes a seed document. Text fields are normalised to NFC so the
// stored bytes are stable regardless of how the file was authored.
func Parse(data []byte) ([]models.Movie, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("seed data is not valid UTF-8")
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}

	movies := make([]models.Movie, 0, len(file.Movies))
	for i, entry := range file.Movies {
		title := norm.NFC.String(strings.TrimSpace(entry.Title))
		if title == "" {
			return nil, fmt.Errorf("seed movie %d: title is required", i)
		}
		movies = append(movies, models.Movie{
			CoverImg: strings.TrimSpace(entry.CoverImg),
			Title:    title,
			Desc:     norm.NFC.String(entry.Desc),
		})
	}
	return movies, nil
}
