package adaptor

import (
	"net/http"

	"github.com/mosqueradvd/cinema-monorepo/internal/dto/request"
	"github.com/mosqueradvd/cinema-monorepo/internal/dto/response"
	"github.com/mosqueradvd/cinema-monorepo/internal/usecase"
	"github.com/mosqueradvd/cinema-monorepo/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// CreateShowtime handles POST /showtimes
func (h *ShowtimeHandler) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShowtimeRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	showtime, err := h.service.CreateShowtime(r.Context(), &req)
	if err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, showtime)
}

// GetShowtimes handles GET /showtimes
func (h *ShowtimeHandler) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	showtimes, err := h.service.GetShowtimes(r.Context())
	if err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	if showtimes == nil {
		showtimes = []response.ShowtimeAvailabilityResponse{}
	}
	utils.ResponseJSON(w, http.StatusOK, showtimes)
}

// GetShowtimeByID handles GET /showtimes/{id}
func (h *ShowtimeHandler) GetShowtimeByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	showtime, err := h.service.GetShowtimeByID(r.Context(), id)
	if err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, showtime)
}

// DeleteShowtime handles DELETE /showtimes/{id}
func (h *ShowtimeHandler) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	if err := h.service.DeleteShowtime(r.Context(), id); err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	utils.ResponseNoContent(w)
}
