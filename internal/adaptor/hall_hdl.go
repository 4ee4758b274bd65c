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

type HallHandler struct {
	service usecase.HallService
	log     *zap.Logger
}

func NewHallHandler(service usecase.HallService, log *zap.Logger) *HallHandler {
	return &HallHandler{
		service: service,
		log:     log.With(zap.String("handler", "hall")),
	}
}

// CreateHall handles POST /halls
func (h *HallHandler) CreateHall(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHallRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	hall, err := h.service.CreateHall(r.Context(), &req)
	if err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, hall)
}

// GetHalls handles GET /halls
func (h *HallHandler) GetHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.GetHalls(r.Context())
	if err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	if halls == nil {
		halls = []response.HallResponse{}
	}
	utils.ResponseJSON(w, http.StatusOK, halls)
}

// GetHallByID handles GET /halls/{id}
func (h *HallHandler) GetHallByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	hall, err := h.service.GetHallByID(r.Context(), id)
	if err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, hall)
}

// UpdateHall handles PATCH /halls/{id}
func (h *HallHandler) UpdateHall(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	var req request.UpdateHallRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	hall, err := h.service.UpdateHall(r.Context(), id, &req)
	if err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, hall)
}

// DeleteHall handles DELETE /halls/{id}
func (h *HallHandler) DeleteHall(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	if err := h.service.DeleteHall(r.Context(), id); err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	utils.ResponseNoContent(w)
}
