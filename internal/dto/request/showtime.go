package request

type CreateShowtimeRequest struct {
	MovieID int64 `json:"movieId" validate:"required,min=1"`
	HallID  int64 `json:"hallId" validate:"required,min=1"`
	// ISO-8601, e.g. 2026-09-01T20:00:00Z
	StartsAt string `json:"startsAt" validate:"required"`
}
