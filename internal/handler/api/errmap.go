package api

import (
	"context"
	"errors"
	"net/http"

	"quoteflow/internal/handler/httperr"
	"quoteflow/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortForError maps a workflow error onto a status code and an actionable
// message. Anything unmarked is a server fault and stays opaque.
func abortForError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request, fix the payload and retry")
	case errors.Is(err, errs.ErrNotAuthenticated):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication required")
	case errors.Is(err, errs.ErrNotAuthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "You do not have access to this resource")
	case errors.Is(err, errs.ErrQuoteNotFound),
		errors.Is(err, errs.ErrRequestNotFound),
		errors.Is(err, errs.ErrQuoteRequestNotFound),
		errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found")
	case errors.Is(err, errs.ErrAlreadyConverted):
		httperr.AbortWithError(c, http.StatusGone, err, "This quote was already converted into a booking")
	case errors.Is(err, errs.ErrExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "This quote has expired; ask the vendor for a new one")
	case errors.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "The quote changed while you were acting; reload and retry")
	case errors.Is(err, errs.ErrInvalidState):
		httperr.AbortWithError(c, http.StatusConflict, err, "This action is not available in the current state")
	case errors.Is(err, errs.ErrTimedOut), errors.Is(err, context.DeadlineExceeded):
		httperr.AbortWithError(c, http.StatusGatewayTimeout, err, "Request timed out, please retry")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
