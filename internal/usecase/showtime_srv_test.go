package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/mosqueradvd/cinema-monorepo/internal/data/memory"
	"github.com/mosqueradvd/cinema-monorepo/internal/data/repository"
	"github.com/mosqueradvd/cinema-monorepo/internal/dto/request"
	"github.com/mosqueradvd/cinema-monorepo/internal/dto/response"
	"github.com/mosqueradvd/cinema-monorepo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) (*usecase.Service, *repository.Repository) {
	t.Helper()
	repo := memory.NewRepository(zap.NewNop())
	return usecase.NewService(repo, zap.NewNop()), repo
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func createFixtures(t *testing.T, svc *usecase.Service, capacity int) (movieID, hallID int64) {
	t.Helper()
	ctx := context.Background()

	movie, err := svc.Movie.CreateMovie(ctx, &request.CreateMovieRequest{
		Title:       "Inception",
		Description: strPtr("A thief who steals corporate secrets"),
		DurationMin: 148,
	})
	require.NoError(t, err)

	hall, err := svc.Hall.CreateHall(ctx, &request.CreateHallRequest{
		Name:     "Sala 1",
		Capacity: capacity,
	})
	require.NoError(t, err)

	return movie.ID, hall.ID
}

func createShowtime(t *testing.T, svc *usecase.Service, movieID, hallID int64) *response.ShowtimeResponse {
	t.Helper()
	showtime, err := svc.Showtime.CreateShowtime(context.Background(), &request.CreateShowtimeRequest{
		MovieID:  movieID,
		HallID:   hallID,
		StartsAt: time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)
	return showtime
}

func TestCreateShowtimeRejectsPastStart(t *testing.T) {
	svc, _ := newService(t)
	movieID, hallID := createFixtures(t, svc, 10)

	_, err := svc.Showtime.CreateShowtime(context.Background(), &request.CreateShowtimeRequest{
		MovieID:  movieID,
		HallID:   hallID,
		StartsAt: time.Now().Add(-time.Hour).UTC().Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, usecase.ErrPastShowtime)
}

func TestCreateShowtimeRejectsMalformedStart(t *testing.T) {
	svc, _ := newService(t)
	movieID, hallID := createFixtures(t, svc, 10)

	_, err := svc.Showtime.CreateShowtime(context.Background(), &request.CreateShowtimeRequest{
		MovieID:  movieID,
		HallID:   hallID,
		StartsAt: "next tuesday",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidStartsAt)
}

func TestCreateShowtimeRejectsDanglingReferences(t *testing.T) {
	svc, _ := newService(t)
	movieID, hallID := createFixtures(t, svc, 10)
	startsAt := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	ctx := context.Background()

	_, err := svc.Showtime.CreateShowtime(ctx, &request.CreateShowtimeRequest{
		MovieID: 999, HallID: hallID, StartsAt: startsAt,
	})
	assert.ErrorIs(t, err, usecase.ErrMovieNotFound)

	_, err = svc.Showtime.CreateShowtime(ctx, &request.CreateShowtimeRequest{
		MovieID: movieID, HallID: 999, StartsAt: startsAt,
	})
	assert.ErrorIs(t, err, usecase.ErrHallNotFound)
}

func TestGetShowtimeAvailability(t *testing.T) {
	svc, _ := newService(t)
	movieID, hallID := createFixtures(t, svc, 2)
	showtime := createShowtime(t, svc, movieID, hallID)
	ctx := context.Background()

	got, err := svc.Showtime.GetShowtimeByID(ctx, showtime.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inception", got.Movie.Title)
	assert.Equal(t, "Sala 1", got.Hall.Name)
	assert.Equal(t, int64(0), got.TicketsSold)
	assert.False(t, got.IsSoldOut)

	// every sale is visible on the next read
	for want := int64(1); want <= 2; want++ {
		_, err := svc.Ticket.Purchase(ctx, showtime.ID)
		require.NoError(t, err)

		got, err = svc.Showtime.GetShowtimeByID(ctx, showtime.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got.TicketsSold)
	}
	assert.True(t, got.IsSoldOut)
}

func TestGetShowtimesSortedByStart(t *testing.T) {
	svc, _ := newService(t)
	movieID, hallID := createFixtures(t, svc, 10)
	ctx := context.Background()

	later := time.Now().Add(3 * time.Hour).UTC().Format(time.RFC3339)
	sooner := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)

	_, err := svc.Showtime.CreateShowtime(ctx, &request.CreateShowtimeRequest{MovieID: movieID, HallID: hallID, StartsAt: later})
	require.NoError(t, err)
	_, err = svc.Showtime.CreateShowtime(ctx, &request.CreateShowtimeRequest{MovieID: movieID, HallID: hallID, StartsAt: sooner})
	require.NoError(t, err)

	all, err := svc.Showtime.GetShowtimes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].StartsAt.Before(all[1].StartsAt))
}

func TestGetShowtimeNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Showtime.GetShowtimeByID(context.Background(), 42)
	assert.ErrorIs(t, err, usecase.ErrShowtimeNotFound)
}

func TestDeleteShowtime(t *testing.T) {
	svc, _ := newService(t)
	movieID, hallID := createFixtures(t, svc, 10)
	showtime := createShowtime(t, svc, movieID, hallID)
	ctx := context.Background()

	require.NoError(t, svc.Showtime.DeleteShowtime(ctx, showtime.ID))

	_, err := svc.Showtime.GetShowtimeByID(ctx, showtime.ID)
	assert.ErrorIs(t, err, usecase.ErrShowtimeNotFound)

	assert.ErrorIs(t, svc.Showtime.DeleteShowtime(ctx, showtime.ID), usecase.ErrShowtimeNotFound)
}
