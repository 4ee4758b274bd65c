// Package memory provides an in-process implementation of the
// repository interfaces. Capacity enforcement uses a mutex per
// showtime around the count-then-insert sequence, so purchases for the
// same showtime serialize while purchases for different showtimes run
// in parallel. It backs the test suite and DB_DRIVER=memory
// deployments.
package memory

import (
	"sync"

	"github.com/mosqueradvd/cinema-monorepo/internal/data/entity"
	"github.com/mosqueradvd/cinema-monorepo/internal/data/repository"

	"go.uber.org/zap"
)

type Store struct {
	mu        sync.RWMutex
	movies    map[int64]entity.Movie
	halls     map[int64]entity.Hall
	showtimes map[int64]entity.Showtime
	tickets   map[int64][]entity.Ticket // keyed by showtime id

	nextMovieID    int64
	nextHallID     int64
	nextShowtimeID int64
	nextTicketID   int64

	locksMu       sync.Mutex
	showtimeLocks map[int64]*sync.Mutex

	log *zap.Logger
}

func NewStore(log *zap.Logger) *Store {
	return &Store{
		movies:        make(map[int64]entity.Movie),
		halls:         make(map[int64]entity.Hall),
		showtimes:     make(map[int64]entity.Showtime),
		tickets:       make(map[int64][]entity.Ticket),
		showtimeLocks: make(map[int64]*sync.Mutex),
		log:           log.With(zap.String("store", "memory")),
	}
}

// NewRepository wires a single shared Store behind every repository
// interface.
func NewRepository(log *zap.Logger) *repository.Repository {
	s := NewStore(log)
	return &repository.Repository{
		Movie:    &movieStore{s},
		Hall:     &hallStore{s},
		Showtime: &showtimeStore{s},
		Ticket:   &ticketStore{s},
	}
}

// showtimeLock returns the mutex guarding purchases for one showtime,
// creating it on first use.
func (s *Store) showtimeLock(showtimeID int64) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.showtimeLocks[showtimeID]
	if !ok {
		lock = &sync.Mutex{}
		s.showtimeLocks[showtimeID] = lock
	}
	return lock
}
