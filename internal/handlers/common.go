package handlers

import (
	"errors"
	"net/http"

	"github.com/pelinsarix/themind/internal/deck"
	"github.com/pelinsarix/themind/internal/services"
)

type ErrorResponse struct {
	Error string `json:"error" example:"game not found"`
}

// statusForError maps the service error taxonomy onto HTTP codes. Anything
// unrecognized is a storage fault and reported as a server error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrNameTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrTooFewPlayers),
		errors.Is(err, services.ErrCardNotInHand),
		errors.Is(err, deck.ErrExhausted):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
