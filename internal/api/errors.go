package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate-backend-go/internal/core"
	"tripmate-backend-go/internal/models"
)

// statusForDenial maps a resolver denial code to an HTTP status. The generic
// verification-failed denial maps to 500: the client gets no internal detail
// beyond the already-generic reason string.
func statusForDenial(code models.DenialCode) int {
	switch code {
	case models.DenialInvalidInput, models.DenialInvalidOperation:
		return http.StatusBadRequest
	case models.DenialVacationNotFound:
		return http.StatusNotFound
	case models.DenialVerificationFailed:
		return http.StatusInternalServerError
	default:
		// Not a member, insufficient role, not the author.
		return http.StatusForbidden
	}
}

// mapCoreErrorToStatus maps errors from the core services to HTTP status
// codes and a standardized ErrorResponse body.
func mapCoreErrorToStatus(c *gin.Context, err error) {
	var deniedErr *core.AccessDeniedError

	switch {
	case errors.As(err, &deniedErr):
		c.JSON(statusForDenial(deniedErr.Code), ErrorResponse{Error: deniedErr.Reason})
	case errors.Is(err, core.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrMessageNotFound.Error()})
	case errors.Is(err, core.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Details: err.Error()})
	default:
		log.Printf("Internal Server Error: %v", err) // Log the actual error for server-side review
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// callerID extracts the authenticated user ID placed in the context by the
// auth middleware. Writes a 401 response and returns false when absent.
func callerID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return "", false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return "", false
	}
	return id, true
}
