package usecase_test

import (
	"context"
	"testing"

	"github.com/mosqueradvd/cinema-monorepo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseTicket(t *testing.T) {
	svc, _ := newService(t)
	movieID, hallID := createFixtures(t, svc, 2)
	showtime := createShowtime(t, svc, movieID, hallID)
	ctx := context.Background()

	first, err := svc.Ticket.Purchase(ctx, showtime.ID)
	require.NoError(t, err)
	assert.Equal(t, showtime.ID, first.ShowtimeID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := svc.Ticket.Purchase(ctx, showtime.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestPurchaseTicketCapacityReached(t *testing.T) {
	svc, _ := newService(t)
	movieID, hallID := createFixtures(t, svc, 1)
	showtime := createShowtime(t, svc, movieID, hallID)
	ctx := context.Background()

	_, err := svc.Ticket.Purchase(ctx, showtime.ID)
	require.NoError(t, err)

	_, err = svc.Ticket.Purchase(ctx, showtime.ID)
	assert.ErrorIs(t, err, usecase.ErrCapacityReached)

	got, err := svc.Showtime.GetShowtimeByID(ctx, showtime.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.TicketsSold)
	assert.True(t, got.IsSoldOut)
}

func TestPurchaseTicketUnknownShowtime(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Ticket.Purchase(context.Background(), 42)
	assert.ErrorIs(t, err, usecase.ErrShowtimeNotFound)
}
