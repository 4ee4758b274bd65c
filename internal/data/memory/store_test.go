package memory_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mosqueradvd/cinema-monorepo/internal/data/entity"
	"github.com/mosqueradvd/cinema-monorepo/internal/data/memory"
	"github.com/mosqueradvd/cinema-monorepo/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newRepo(t *testing.T) *repository.Repository {
	t.Helper()
	return memory.NewRepository(zap.NewNop())
}

func seedShowtime(t *testing.T, repo *repository.Repository, capacity int) *entity.Showtime {
	t.Helper()
	ctx := context.Background()

	movie := &entity.Movie{Title: "Inception", DurationMin: 148, CreatedAt: time.Now()}
	require.NoError(t, repo.Movie.Create(ctx, movie))

	hall := &entity.Hall{Name: "Sala 1", Capacity: capacity, CreatedAt: time.Now()}
	require.NoError(t, repo.Hall.Create(ctx, hall))

	showtime := &entity.Showtime{
		MovieID:   movie.ID,
		HallID:    hall.ID,
		StartsAt:  time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Showtime.Create(ctx, showtime))
	return showtime
}

func TestMovieCRUD(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	movie := &entity.Movie{Title: "Inception", DurationMin: 148, CreatedAt: time.Now()}
	require.NoError(t, repo.Movie.Create(ctx, movie))
	assert.Equal(t, int64(1), movie.ID)

	found, err := repo.Movie.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inception", found.Title)

	found.Title = "Inception (2010)"
	require.NoError(t, repo.Movie.Update(ctx, found))

	all, err := repo.Movie.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Inception (2010)", all[0].Title)

	require.NoError(t, repo.Movie.Delete(ctx, movie.ID))

	_, err = repo.Movie.FindByID(ctx, movie.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHallDuplicateName(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Hall.Create(ctx, &entity.Hall{Name: "Sala 1", Capacity: 50}))

	err := repo.Hall.Create(ctx, &entity.Hall{Name: "Sala 1", Capacity: 30})
	assert.ErrorIs(t, err, repository.ErrDuplicateName)
}

func TestDeleteReferencedMovieAndHall(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	showtime := seedShowtime(t, repo, 10)

	assert.ErrorIs(t, repo.Movie.Delete(ctx, showtime.MovieID), repository.ErrReferenced)
	assert.ErrorIs(t, repo.Hall.Delete(ctx, showtime.HallID), repository.ErrReferenced)

	// once the showtime is gone both deletes go through
	require.NoError(t, repo.Showtime.Delete(ctx, showtime.ID))
	assert.NoError(t, repo.Movie.Delete(ctx, showtime.MovieID))
	assert.NoError(t, repo.Hall.Delete(ctx, showtime.HallID))
}

func TestShowtimeCreateWithMissingReferences(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	err := repo.Showtime.Create(ctx, &entity.Showtime{MovieID: 99, HallID: 99, StartsAt: time.Now().Add(time.Hour)})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPurchaseUnknownShowtime(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.Ticket.Purchase(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPurchaseFillsUpToCapacity(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	showtime := seedShowtime(t, repo, 2)

	for i := 0; i < 2; i++ {
		ticket, err := repo.Ticket.Purchase(ctx, showtime.ID)
		require.NoError(t, err)
		assert.Equal(t, showtime.ID, ticket.ShowtimeID)
	}

	_, err := repo.Ticket.Purchase(ctx, showtime.ID)
	assert.ErrorIs(t, err, repository.ErrCapacityReached)

	// full is terminal: repeated attempts keep failing
	_, err = repo.Ticket.Purchase(ctx, showtime.ID)
	assert.ErrorIs(t, err, repository.ErrCapacityReached)

	sold, err := repo.Ticket.CountByShowtimeID(ctx, showtime.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), sold)
}

func TestConcurrentPurchasesNeverOversell(t *testing.T) {
	const capacity = 10
	const buyers = 50

	repo := newRepo(t)
	ctx := context.Background()

	showtime := seedShowtime(t, repo, capacity)

	var succeeded, rejected atomic.Int64

	g := new(errgroup.Group)
	for i := 0; i < buyers; i++ {
		g.Go(func() error {
			_, err := repo.Ticket.Purchase(ctx, showtime.ID)
			switch {
			case err == nil:
				succeeded.Add(1)
			case assert.ErrorIs(t, err, repository.ErrCapacityReached):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(capacity), succeeded.Load())
	assert.Equal(t, int64(buyers-capacity), rejected.Load())

	sold, err := repo.Ticket.CountByShowtimeID(ctx, showtime.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(capacity), sold)
}

func TestConcurrentPurchasesOnDistinctShowtimes(t *testing.T) {
	const capacity = 5

	repo := newRepo(t)
	ctx := context.Background()

	first := seedShowtime(t, repo, capacity)

	second := &entity.Showtime{
		MovieID:   first.MovieID,
		HallID:    first.HallID,
		StartsAt:  time.Now().Add(2 * time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Showtime.Create(ctx, second))

	g := new(errgroup.Group)
	for _, id := range []int64{first.ID, second.ID} {
		id := id
		for i := 0; i < capacity; i++ {
			g.Go(func() error {
				_, err := repo.Ticket.Purchase(ctx, id)
				return err
			})
		}
	}
	require.NoError(t, g.Wait())

	for _, id := range []int64{first.ID, second.ID} {
		sold, err := repo.Ticket.CountByShowtimeID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(capacity), sold)
	}
}

func TestDeleteShowtimeCascadesTickets(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	showtime := seedShowtime(t, repo, 5)

	_, err := repo.Ticket.Purchase(ctx, showtime.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Showtime.Delete(ctx, showtime.ID))

	sold, err := repo.Ticket.CountByShowtimeID(ctx, showtime.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sold)
}
