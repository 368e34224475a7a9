package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/unalbahadir/lawyer-assistant/pkg/service"
)

// statusForError maps service sentinel errors to HTTP statuses for the local
// UI API. Anything unrecognized is a backend/transport failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrNoActiveCase):
		return http.StatusConflict
	case errors.Is(err, service.ErrQuestionPending),
		errors.Is(err, service.ErrGenerationInFlight):
		return http.StatusConflict
	case errors.Is(err, service.ErrEmptyQuestion),
		errors.Is(err, service.ErrInvalidTab),
		errors.Is(err, service.ErrInvalidTemplateType),
		errors.Is(err, service.ErrDeleteNotConfirmed):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
