package memory

import (
	"context"
	"sort"

	"github.com/mosqueradvd/cinema-monorepo/internal/data/entity"
	"github.com/mosqueradvd/cinema-monorepo/internal/data/repository"
)

type showtimeStore struct {
	s *Store
}

var _ repository.ShowtimeRepository = (*showtimeStore)(nil)

func (st *showtimeStore) Create(ctx context.Context, showtime *entity.Showtime) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	// same error kind as the Postgres foreign keys
	if _, ok := st.s.movies[showtime.MovieID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := st.s.halls[showtime.HallID]; !ok {
		return repository.ErrNotFound
	}

	st.s.nextShowtimeID++
	showtime.ID = st.s.nextShowtimeID
	st.s.showtimes[showtime.ID] = *showtime
	return nil
}

func (st *showtimeStore) FindAll(ctx context.Context) ([]*entity.Showtime, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	showtimes := make([]*entity.Showtime, 0, len(st.s.showtimes))
	for _, showtime := range st.s.showtimes {
		copied := showtime
		showtimes = append(showtimes, &copied)
	}
	sort.Slice(showtimes, func(i, j int) bool {
		if !showtimes[i].StartsAt.Equal(showtimes[j].StartsAt) {
			return showtimes[i].StartsAt.Before(showtimes[j].StartsAt)
		}
		return showtimes[i].ID < showtimes[j].ID
	})
	return showtimes, nil
}

func (st *showtimeStore) FindByID(ctx context.Context, id int64) (*entity.Showtime, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	showtime, ok := st.s.showtimes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &showtime, nil
}

func (st *showtimeStore) Delete(ctx context.Context, id int64) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	if _, ok := st.s.showtimes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(st.s.showtimes, id)
	// tickets are owned by the showtime
	delete(st.s.tickets, id)
	return nil
}
