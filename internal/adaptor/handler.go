package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mosqueradvd/cinema-monorepo/internal/usecase"
	"github.com/mosqueradvd/cinema-monorepo/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie    *MovieHandler
	Hall     *HallHandler
	Showtime *ShowtimeHandler
	Ticket   *TicketHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:    NewMovieHandler(service.Movie, log),
		Hall:     NewHallHandler(service.Hall, log),
		Showtime: NewShowtimeHandler(service.Showtime, log),
		Ticket:   NewTicketHandler(service.Ticket, log),
	}
}

// decodeJSON parses the request body into dst, rejecting unknown and
// malformed fields before any domain logic runs.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	// trailing garbage after the JSON document
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("invalid request body: unexpected trailing data")
	}
	return nil
}

// mapServiceError translates the service taxonomy into HTTP replies.
// Anything outside the taxonomy is a server fault and is logged.
func mapServiceError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound),
		errors.Is(err, usecase.ErrHallNotFound),
		errors.Is(err, usecase.ErrShowtimeNotFound):
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrPastShowtime),
		errors.Is(err, usecase.ErrInvalidStartsAt),
		errors.Is(err, usecase.ErrCapacityReached):
		utils.ResponseBadRequest(w, err.Error())

	case errors.Is(err, usecase.ErrHallNameTaken),
		errors.Is(err, usecase.ErrMovieInUse),
		errors.Is(err, usecase.ErrHallInUse):
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Unhandled service error", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
