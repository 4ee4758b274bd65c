package memory

import (
	"context"

	"github.com/mosqueradvd/cinema-monorepo/internal/data/entity"
	"github.com/mosqueradvd/cinema-monorepo/internal/data/repository"
)

type movieStore struct {
	s *Store
}

var _ repository.MovieRepository = (*movieStore)(nil)

func (m *movieStore) Create(ctx context.Context, movie *entity.Movie) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	m.s.nextMovieID++
	movie.ID = m.s.nextMovieID
	m.s.movies[movie.ID] = *movie
	return nil
}

func (m *movieStore) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	movies := make([]*entity.Movie, 0, len(m.s.movies))
	for id := int64(1); id <= m.s.nextMovieID; id++ {
		if movie, ok := m.s.movies[id]; ok {
			copied := movie
			movies = append(movies, &copied)
		}
	}
	return movies, nil
}

func (m *movieStore) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	movie, ok := m.s.movies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &movie, nil
}

func (m *movieStore) Update(ctx context.Context, movie *entity.Movie) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.movies[movie.ID]; !ok {
		return repository.ErrNotFound
	}
	m.s.movies[movie.ID] = *movie
	return nil
}

func (m *movieStore) Delete(ctx context.Context, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.movies[id]; !ok {
		return repository.ErrNotFound
	}
	for _, showtime := range m.s.showtimes {
		if showtime.MovieID == id {
			return repository.ErrReferenced
		}
	}
	delete(m.s.movies, id)
	return nil
}
