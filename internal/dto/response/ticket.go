package response

import (
	"time"

	"github.com/mosqueradvd/cinema-monorepo/internal/data/entity"
)

type TicketResponse struct {
	ID         int64     `json:"id"`
	ShowtimeID int64     `json:"showtimeId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:         ticket.ID,
		ShowtimeID: ticket.ShowtimeID,
		CreatedAt:  ticket.CreatedAt,
	}
}
