package core

import (
	"context"

	"tripmate-backend-go/internal/models"
)

// AccessService resolves vacation membership into authorization decisions.
// Both methods are pure reads over the current membership state: calling
// twice with identical arguments against an unchanged store yields identical
// results. Neither method ever returns a transport error; store failures
// surface as fail-closed denial results.
type AccessService interface {
	// VerifyVacationAccess decides whether userID meets the required
	// permission tier on vacationID. Malformed input is denied before any
	// store access.
	VerifyVacationAccess(ctx context.Context, vacationID, userID string, required models.PermissionTier) models.AccessVerification

	// VerifyMessagePermissions decides per-operation message authorization.
	// messageAuthorID is only consulted for edit and delete, where the owner
	// role or self-authorship grants the operation.
	VerifyMessagePermissions(ctx context.Context, vacationID, userID string, op models.MessageOperation, messageAuthorID string) models.MessagePermission
}

// MembershipService exposes membership reads gated by the access resolver.
type MembershipService interface {
	// CheckAccess surfaces the resolver verbatim for the access-check endpoint.
	CheckAccess(ctx context.Context, vacationID, userID string, required models.PermissionTier) models.AccessVerification
	// ListMembers returns the member roster, requiring view access.
	ListMembers(ctx context.Context, vacationID, userID string) ([]models.MemberInfo, error)
}

// MessageService defines the interface for authorization-guarded message operations.
type MessageService interface {
	SendMessage(ctx context.Context, vacationID, userID string, req models.SendMessageRequest) (*models.Message, error)
	ListMessages(ctx context.Context, vacationID, userID string, paginationParams map[string]string) ([]*models.Message, error)
	EditMessage(ctx context.Context, vacationID, userID, messageID string, req models.EditMessageRequest) (*models.Message, error)
	DeleteMessage(ctx context.Context, vacationID, userID, messageID string) error
}

// AuditService defines the interface for audit logging operations.
type AuditService interface {
	CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error
}
