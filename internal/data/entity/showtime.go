package entity

import (
	"time"
)

type Showtime struct {
	ID        int64     `db:"id"`
	MovieID   int64     `db:"movie_id"`
	HallID    int64     `db:"hall_id"`
	StartsAt  time.Time `db:"starts_at"`
	CreatedAt time.Time `db:"created_at"`
}
