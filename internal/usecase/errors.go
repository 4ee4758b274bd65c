package usecase

import "errors"

// Service-level error taxonomy. Handlers map these onto HTTP status
// codes; the error text doubles as the client-facing message.
var (
	ErrMovieNotFound    = errors.New("Movie not found")
	ErrHallNotFound     = errors.New("Hall not found")
	ErrShowtimeNotFound = errors.New("Showtime not found")

	// ErrPastShowtime rejects schedules whose start time is already
	// behind the clock at creation time.
	ErrPastShowtime = errors.New("Cannot create showtimes in the past")

	ErrInvalidStartsAt = errors.New("startsAt must be an ISO-8601 timestamp")

	// ErrCapacityReached is the allocator's terminal outcome for a
	// full hall. Not a fault, never retried.
	ErrCapacityReached = errors.New("capacity reached")

	ErrHallNameTaken = errors.New("Hall name already in use")
	ErrMovieInUse    = errors.New("Movie still has showtimes scheduled")
	ErrHallInUse     = errors.New("Hall still has showtimes scheduled")
)
