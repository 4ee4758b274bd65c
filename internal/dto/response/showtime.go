package response

import (
	"time"

	"github.com/mosqueradvd/cinema-monorepo/internal/data/entity"
)

type ShowtimeResponse struct {
	ID       int64     `json:"id"`
	MovieID  int64     `json:"movieId"`
	HallID   int64     `json:"hallId"`
	StartsAt time.Time `json:"startsAt"`
}

// ShowtimeAvailabilityResponse is the listing shape: the showtime with
// its movie and hall embedded plus the availability projection. The
// ticketsSold count is derived on read from the same count the
// allocator checks against, never maintained separately.
type ShowtimeAvailabilityResponse struct {
	ShowtimeResponse
	Movie       MovieResponse `json:"movie"`
	Hall        HallResponse  `json:"hall"`
	TicketsSold int64         `json:"ticketsSold"`
	IsSoldOut   bool          `json:"isSoldOut"`
}

func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:       showtime.ID,
		MovieID:  showtime.MovieID,
		HallID:   showtime.HallID,
		StartsAt: showtime.StartsAt,
	}
}

func ShowtimeToAvailabilityResponse(showtime *entity.Showtime, movie *entity.Movie, hall *entity.Hall, ticketsSold int64) ShowtimeAvailabilityResponse {
	return ShowtimeAvailabilityResponse{
		ShowtimeResponse: ShowtimeToResponse(showtime),
		Movie:            MovieToResponse(movie),
		Hall:             HallToResponse(hall),
		TicketsSold:      ticketsSold,
		IsSoldOut:        ticketsSold >= int64(hall.Capacity),
	}
}
