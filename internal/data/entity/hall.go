package entity

import (
	"time"
)

// Hall capacity is the hard upper bound on tickets for every showtime
// hosted in the hall.
type Hall struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Capacity  int       `db:"capacity"`
	CreatedAt time.Time `db:"created_at"`
}
