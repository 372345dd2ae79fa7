package handlers

import (
	"errors"
	"net/http"

	"bustickets/internal/domain"
	"bustickets/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// respondError sends the standard failure payload. Every failure body
// carries an "error" field; request_id is included for log correlation.
func respondError(c *gin.Context, status int, message string) {
	payload := gin.H{"error": message}
	if rid := middleware.GetRequestID(c); rid != "" {
		payload["request_id"] = rid
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Store errors
// never reach the client verbatim; the wrapped cause stays in the server
// log only.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case domain.IsInsufficientSeats(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error())
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, err.Error())
	default:
		msg := "internal server error"
		var ie domain.InternalError
		if errors.As(err, &ie) && ie.Msg != "" {
			msg = ie.Msg
		}
		respondError(c, http.StatusInternalServerError, msg)
	}
}
