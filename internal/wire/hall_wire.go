package wire

import (
	"github.com/mosqueradvd/cinema-monorepo/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHall(r chi.Router, hallHandler *adaptor.HallHandler) {
	r.Route("/halls", func(r chi.Router) {
		r.Post("/", hallHandler.CreateHall)
		r.Get("/", hallHandler.GetHalls)
		r.Get("/{id}", hallHandler.GetHallByID)
		r.Patch("/{id}", hallHandler.UpdateHall)
		r.Delete("/{id}", hallHandler.DeleteHall)
	})
}
