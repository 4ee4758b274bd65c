package entity

import (
	"time"
)

// Ticket is an undifferentiated unit of hall capacity: no seat number,
// no owner. Tickets belong to their showtime and are deleted with it.
type Ticket struct {
	ID         int64     `db:"id"`
	ShowtimeID int64     `db:"showtime_id"`
	CreatedAt  time.Time `db:"created_at"`
}
