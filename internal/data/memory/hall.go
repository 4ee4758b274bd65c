package memory

import (
	"context"

	"github.com/mosqueradvd/cinema-monorepo/internal/data/entity"
	"github.com/mosqueradvd/cinema-monorepo/internal/data/repository"
)

type hallStore struct {
	s *Store
}

var _ repository.HallRepository = (*hallStore)(nil)

func (h *hallStore) Create(ctx context.Context, hall *entity.Hall) error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	for _, existing := range h.s.halls {
		if existing.Name == hall.Name {
			return repository.ErrDuplicateName
		}
	}

	h.s.nextHallID++
	hall.ID = h.s.nextHallID
	h.s.halls[hall.ID] = *hall
	return nil
}

func (h *hallStore) FindAll(ctx context.Context) ([]*entity.Hall, error) {
	h.s.mu.RLock()
	defer h.s.mu.RUnlock()

	halls := make([]*entity.Hall, 0, len(h.s.halls))
	for id := int64(1); id <= h.s.nextHallID; id++ {
		if hall, ok := h.s.halls[id]; ok {
			copied := hall
			halls = append(halls, &copied)
		}
	}
	return halls, nil
}

func (h *hallStore) FindByID(ctx context.Context, id int64) (*entity.Hall, error) {
	h.s.mu.RLock()
	defer h.s.mu.RUnlock()

	hall, ok := h.s.halls[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &hall, nil
}

func (h *hallStore) Update(ctx context.Context, hall *entity.Hall) error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	if _, ok := h.s.halls[hall.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range h.s.halls {
		if id != hall.ID && existing.Name == hall.Name {
			return repository.ErrDuplicateName
		}
	}
	h.s.halls[hall.ID] = *hall
	return nil
}

func (h *hallStore) Delete(ctx context.Context, id int64) error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	if _, ok := h.s.halls[id]; !ok {
		return repository.ErrNotFound
	}
	for _, showtime := range h.s.showtimes {
		if showtime.HallID == id {
			return repository.ErrReferenced
		}
	}
	delete(h.s.halls, id)
	return nil
}
