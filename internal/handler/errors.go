package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/pkordes/freight-rates/backend/internal/domain"
)

// Generic 500 details. Storage error text is logged, never sent to clients.
const (
	detailDataAccess = "A database error occurred while fetching rates."
	detailUnexpected = "An unexpected error occurred while fetching rates."
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Detail string `json:"detail"`
}

// writeError renders err as {"detail": ...} with the status its category maps to:
// invalid date, invalid range and unknown location are the client's fault (400);
// everything else is a 500 with a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrUnknownLocation):
		s.writeDetail(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDataAccess):
		// The service already logged the full error.
		s.writeDetail(w, r, http.StatusInternalServerError, detailDataAccess)
	default:
		s.log.ErrorContext(r.Context(), "unexpected error", "path", r.URL.Path, "error", err)
		s.writeDetail(w, r, http.StatusInternalServerError, detailUnexpected)
	}
}

// writeDetail renders a bare {"detail": message} body with status.
func (s *Server) writeDetail(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Detail: message})
}
