package response

import (
	"github.com/mosqueradvd/cinema-monorepo/internal/data/entity"
)

type MovieResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DurationMin int     `json:"durationMin"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		DurationMin: movie.DurationMin,
	}
}
