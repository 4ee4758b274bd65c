package entity

import (
	"time"
)

type Movie struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	DurationMin int       `db:"duration_min"`
	CreatedAt   time.Time `db:"created_at"`
}
