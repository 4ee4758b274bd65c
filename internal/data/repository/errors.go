// Package repository defines the persistence interfaces for the cinema
// domain together with their Postgres implementations. The sentinel
// errors below are the storage-level taxonomy; services wrap them with
// context and handlers translate them into HTTP status codes with
// errors.Is.
package repository

import "errors"

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrCapacityReached is returned by the ticket purchase path when the
// showtime's hall is full. It is a business outcome, not a fault: it is
// surfaced to the caller as-is and never retried.
var ErrCapacityReached = errors.New("capacity reached")

// ErrDuplicateName is returned when a unique name constraint is
// violated, e.g. creating a second hall with the same name.
var ErrDuplicateName = errors.New("name already exists")

// ErrReferenced is returned when a delete cannot proceed because
// dependent records still reference the row, e.g. deleting a movie that
// still has showtimes scheduled.
var ErrReferenced = errors.New("record is still referenced")
