package usecase

import (
	"github.com/mosqueradvd/cinema-monorepo/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie    MovieService
	Hall     HallService
	Showtime ShowtimeService
	Ticket   TicketService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:    NewMovieService(repo, log),
		Hall:     NewHallService(repo, log),
		Showtime: NewShowtimeService(repo, log),
		Ticket:   NewTicketService(repo, log),
	}
}
