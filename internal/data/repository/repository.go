package repository

import (
	"github.com/mosqueradvd/cinema-monorepo/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie    MovieRepository
	Hall     HallRepository
	Showtime ShowtimeRepository
	Ticket   TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:    NewMovieRepository(db, log),
		Hall:     NewHallRepository(db, log),
		Showtime: NewShowtimeRepository(db, log),
		Ticket:   NewTicketRepository(db, log),
	}
}
