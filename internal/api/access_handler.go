package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate-backend-go/internal/core"
	"tripmate-backend-go/internal/models"
)

// AccessHandler handles API endpoints for vacation access checks and
// membership reads.
type AccessHandler struct {
	membershipService core.MembershipService
}

// NewAccessHandler creates a new AccessHandler.
func NewAccessHandler(ms core.MembershipService) *AccessHandler {
	return &AccessHandler{membershipService: ms}
}

// CheckAccess handles GET /vacations/:vacationId/access?permission=view|edit|manage
// The response body is the resolver's verification result in both the grant
// and the denial case; only the HTTP status differs.
func (h *AccessHandler) CheckAccess(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	vacationID := c.Param("vacationId")

	required := models.PermissionTier(c.DefaultQuery("permission", string(models.PermissionView)))

	verification := h.membershipService.CheckAccess(c.Request.Context(), vacationID, userID, required)
	if !verification.HasAccess {
		c.JSON(statusForDenial(verification.Code), verification)
		return
	}
	c.JSON(http.StatusOK, verification)
}

// ListMembers handles GET /vacations/:vacationId/members
func (h *AccessHandler) ListMembers(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	vacationID := c.Param("vacationId")

	members, err := h.membershipService.ListMembers(c.Request.Context(), vacationID, userID)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, MemberListResponse{
		VacationID: vacationID,
		Members:    members,
		Count:      len(members),
	})
}
