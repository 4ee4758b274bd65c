package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mosqueradvd/cinema-monorepo/internal/data/entity"
	"github.com/mosqueradvd/cinema-monorepo/internal/data/repository"
	"github.com/mosqueradvd/cinema-monorepo/internal/dto/request"
	"github.com/mosqueradvd/cinema-monorepo/internal/dto/response"

	"go.uber.org/zap"
)

type ShowtimeService interface {
	CreateShowtime(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error)
	GetShowtimes(ctx context.Context) ([]response.ShowtimeAvailabilityResponse, error)
	GetShowtimeByID(ctx context.Context, id int64) (*response.ShowtimeAvailabilityResponse, error)
	DeleteShowtime(ctx context.Context, id int64) error
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error) {
	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, ErrInvalidStartsAt
	}

	if startsAt.Before(time.Now()) {
		return nil, ErrPastShowtime
	}

	if _, err := s.repo.Movie.FindByID(ctx, req.MovieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("check movie %d: %w", req.MovieID, err)
	}
	if _, err := s.repo.Hall.FindByID(ctx, req.HallID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHallNotFound
		}
		return nil, fmt.Errorf("check hall %d: %w", req.HallID, err)
	}

	showtime := &entity.Showtime{
		MovieID:   req.MovieID,
		HallID:    req.HallID,
		StartsAt:  startsAt,
		CreatedAt: time.Now(),
	}

	// the foreign keys re-check the references, so a movie or hall
	// deleted since the checks above still surfaces as not found
	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if _, herr := s.repo.Hall.FindByID(ctx, req.HallID); errors.Is(herr, repository.ErrNotFound) {
				return nil, ErrHallNotFound
			}
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.Int64("showtime_id", showtime.ID),
		zap.Int64("movie_id", showtime.MovieID),
		zap.Int64("hall_id", showtime.HallID),
		zap.Time("starts_at", showtime.StartsAt),
	)

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

// GetShowtimes lists every showtime enriched with its movie, hall and
// availability. ticketsSold uses the exact count the allocator's
// admission check reads, so the sold-out flag can never contradict
// what a purchase attempt would decide at the same instant.
func (s *showtimeService) GetShowtimes(ctx context.Context) ([]response.ShowtimeAvailabilityResponse, error) {
	showtimes, err := s.repo.Showtime.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get showtimes: %w", err)
	}

	responses := make([]response.ShowtimeAvailabilityResponse, 0, len(showtimes))
	for _, showtime := range showtimes {
		enriched, err := s.enrich(ctx, showtime)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *enriched)
	}
	return responses, nil
}

func (s *showtimeService) GetShowtimeByID(ctx context.Context, id int64) (*response.ShowtimeAvailabilityResponse, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrShowtimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get showtime %d: %w", id, err)
	}

	return s.enrich(ctx, showtime)
}

func (s *showtimeService) DeleteShowtime(ctx context.Context, id int64) error {
	err := s.repo.Showtime.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrShowtimeNotFound
	}
	if err != nil {
		return fmt.Errorf("delete showtime %d: %w", id, err)
	}

	s.log.Info("Showtime deleted", zap.Int64("showtime_id", id))
	return nil
}

func (s *showtimeService) enrich(ctx context.Context, showtime *entity.Showtime) (*response.ShowtimeAvailabilityResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	if err != nil {
		return nil, fmt.Errorf("movie %d for showtime %d: %w", showtime.MovieID, showtime.ID, err)
	}

	hall, err := s.repo.Hall.FindByID(ctx, showtime.HallID)
	if err != nil {
		return nil, fmt.Errorf("hall %d for showtime %d: %w", showtime.HallID, showtime.ID, err)
	}

	sold, err := s.repo.Ticket.CountByShowtimeID(ctx, showtime.ID)
	if err != nil {
		return nil, fmt.Errorf("count tickets for showtime %d: %w", showtime.ID, err)
	}

	resp := response.ShowtimeToAvailabilityResponse(showtime, movie, hall, sold)
	return &resp, nil
}
