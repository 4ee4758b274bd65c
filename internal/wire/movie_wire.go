package wire

import (
	"github.com/mosqueradvd/cinema-monorepo/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/movies", func(r chi.Router) {
		r.Post("/", movieHandler.CreateMovie)
		r.Get("/", movieHandler.GetMovies)
		r.Get("/{id}", movieHandler.GetMovieByID)
		r.Patch("/{id}", movieHandler.UpdateMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})
}
