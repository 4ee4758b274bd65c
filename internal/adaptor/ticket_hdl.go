package adaptor

import (
	"net/http"

	"github.com/mosqueradvd/cinema-monorepo/internal/dto/request"
	"github.com/mosqueradvd/cinema-monorepo/internal/usecase"
	"github.com/mosqueradvd/cinema-monorepo/pkg/utils"

	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// PurchaseTicket handles POST /tickets/purchase. A sold-out showtime
// answers 400 "capacity reached"; an unknown showtime answers 404.
func (h *TicketHandler) PurchaseTicket(w http.ResponseWriter, r *http.Request) {
	var req request.PurchaseTicketRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	ticket, err := h.service.Purchase(r.Context(), req.ShowtimeID)
	if err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, ticket)
}
