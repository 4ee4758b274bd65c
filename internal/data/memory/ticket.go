package memory

import (
	"context"
	"time"

	"github.com/mosqueradvd/cinema-monorepo/internal/data/entity"
	"github.com/mosqueradvd/cinema-monorepo/internal/data/repository"
)

type ticketStore struct {
	s *Store
}

var _ repository.TicketRepository = (*ticketStore)(nil)

// Purchase serializes on the showtime's own mutex, so concurrent
// purchases for the same showtime decide admission one at a time while
// other showtimes stay unaffected. The store mutex is only held for
// the map accesses themselves; the showtime's existence is re-checked
// under it so a concurrent showtime delete cannot leave an orphan
// ticket.
func (t *ticketStore) Purchase(ctx context.Context, showtimeID int64) (*entity.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lock := t.s.showtimeLock(showtimeID)
	lock.Lock()
	defer lock.Unlock()

	t.s.mu.RLock()
	showtime, ok := t.s.showtimes[showtimeID]
	if !ok {
		t.s.mu.RUnlock()
		return nil, repository.ErrNotFound
	}
	hall := t.s.halls[showtime.HallID]
	sold := len(t.s.tickets[showtimeID])
	t.s.mu.RUnlock()

	if sold >= hall.Capacity {
		return nil, repository.ErrCapacityReached
	}

	// Holding the showtime lock means no other purchase can grow the
	// count between the read above and the append below.
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, ok := t.s.showtimes[showtimeID]; !ok {
		// showtime deleted while we decided
		return nil, repository.ErrNotFound
	}

	t.s.nextTicketID++
	ticket := entity.Ticket{
		ID:         t.s.nextTicketID,
		ShowtimeID: showtimeID,
		CreatedAt:  time.Now(),
	}
	t.s.tickets[showtimeID] = append(t.s.tickets[showtimeID], ticket)

	return &ticket, nil
}

func (t *ticketStore) CountByShowtimeID(ctx context.Context, showtimeID int64) (int64, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	return int64(len(t.s.tickets[showtimeID])), nil
}
