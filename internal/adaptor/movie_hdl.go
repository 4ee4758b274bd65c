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

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMovieRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, movie)
}

// GetMovies handles GET /movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	if movies == nil {
		movies = []response.MovieResponse{}
	}
	utils.ResponseJSON(w, http.StatusOK, movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), id)
	if err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movie)
}

// UpdateMovie handles PATCH /movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	var req request.UpdateMovieRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), id, &req)
	if err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movie)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	if err := h.service.DeleteMovie(r.Context(), id); err != nil {
		mapServiceError(w, h.log, err)
		return
	}

	utils.ResponseNoContent(w)
}
