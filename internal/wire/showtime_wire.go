package wire

import (
	"github.com/mosqueradvd/cinema-monorepo/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler) {
	r.Route("/showtimes", func(r chi.Router) {
		r.Post("/", showtimeHandler.CreateShowtime)
		r.Get("/", showtimeHandler.GetShowtimes)
		r.Get("/{id}", showtimeHandler.GetShowtimeByID)
		r.Delete("/{id}", showtimeHandler.DeleteShowtime)
	})
}
