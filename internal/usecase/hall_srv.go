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

type HallService interface {
	CreateHall(ctx context.Context, req *request.CreateHallRequest) (*response.HallResponse, error)
	GetHalls(ctx context.Context) ([]response.HallResponse, error)
	GetHallByID(ctx context.Context, id int64) (*response.HallResponse, error)
	UpdateHall(ctx context.Context, id int64, req *request.UpdateHallRequest) (*response.HallResponse, error)
	DeleteHall(ctx context.Context, id int64) error
}

type hallService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHallService(repo *repository.Repository, log *zap.Logger) HallService {
	return &hallService{
		repo: repo,
		log:  log.With(zap.String("service", "hall")),
	}
}

func (s *hallService) CreateHall(ctx context.Context, req *request.CreateHallRequest) (*response.HallResponse, error) {
	hall := &entity.Hall{
		Name:      req.Name,
		Capacity:  req.Capacity,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Hall.Create(ctx, hall); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrHallNameTaken
		}
		return nil, fmt.Errorf("create hall: %w", err)
	}

	s.log.Info("Hall created",
		zap.Int64("hall_id", hall.ID),
		zap.String("name", hall.Name),
		zap.Int("capacity", hall.Capacity),
	)

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *hallService) GetHalls(ctx context.Context) ([]response.HallResponse, error) {
	halls, err := s.repo.Hall.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get halls: %w", err)
	}

	responses := make([]response.HallResponse, len(halls))
	for i, hall := range halls {
		responses[i] = response.HallToResponse(hall)
	}
	return responses, nil
}

func (s *hallService) GetHallByID(ctx context.Context, id int64) (*response.HallResponse, error) {
	hall, err := s.repo.Hall.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrHallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get hall %d: %w", id, err)
	}

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *hallService) UpdateHall(ctx context.Context, id int64, req *request.UpdateHallRequest) (*response.HallResponse, error) {
	hall, err := s.repo.Hall.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrHallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find hall %d: %w", id, err)
	}

	if req.Name != nil {
		hall.Name = *req.Name
	}
	if req.Capacity != nil {
		hall.Capacity = *req.Capacity
	}

	if err := s.repo.Hall.Update(ctx, hall); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrHallNotFound
		case errors.Is(err, repository.ErrDuplicateName):
			return nil, ErrHallNameTaken
		}
		return nil, fmt.Errorf("update hall %d: %w", id, err)
	}

	s.log.Info("Hall updated", zap.Int64("hall_id", id))

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *hallService) DeleteHall(ctx context.Context, id int64) error {
	err := s.repo.Hall.Delete(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrHallNotFound
	case errors.Is(err, repository.ErrReferenced):
		return ErrHallInUse
	case err != nil:
		return fmt.Errorf("delete hall %d: %w", id, err)
	}

	s.log.Info("Hall deleted", zap.Int64("hall_id", id))
	return nil
}
