package wire

import (
	"github.com/mosqueradvd/cinema-monorepo/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	r.Post("/tickets/purchase", ticketHandler.PurchaseTicket)
}
