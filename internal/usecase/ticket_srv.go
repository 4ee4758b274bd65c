package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mosqueradvd/cinema-monorepo/internal/data/repository"
	"github.com/mosqueradvd/cinema-monorepo/internal/dto/response"

	"go.uber.org/zap"
)

type TicketService interface {
	// Purchase issues one ticket against the showtime's hall capacity.
	// The decision and the insert happen in a single atomic unit in
	// the store; either a ticket exists afterwards or nothing does.
	Purchase(ctx context.Context, showtimeID int64) (*response.TicketResponse, error)
}

type ticketService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTicketService(repo *repository.Repository, log *zap.Logger) TicketService {
	return &ticketService{
		repo: repo,
		log:  log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) Purchase(ctx context.Context, showtimeID int64) (*response.TicketResponse, error) {
	ticket, err := s.repo.Ticket.Purchase(ctx, showtimeID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, ErrShowtimeNotFound
	case errors.Is(err, repository.ErrCapacityReached):
		// a full house is not transient; surface it, never retry
		s.log.Info("Purchase rejected, hall full",
			zap.Int64("showtime_id", showtimeID),
		)
		return nil, ErrCapacityReached
	case err != nil:
		return nil, fmt.Errorf("purchase ticket for showtime %d: %w", showtimeID, err)
	}

	s.log.Info("Ticket issued",
		zap.Int64("ticket_id", ticket.ID),
		zap.Int64("showtime_id", showtimeID),
	)

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}
