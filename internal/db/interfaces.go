package db

import (
	"context"

	"tripmate-backend-go/internal/models"
)

// VacationRepository defines read access to the vacation membership store.
type VacationRepository interface {
	// GetVacation returns the vacation record, or nil (not an error) when no
	// vacation exists under the given ID. Errors indicate transport failures
	// only; the access resolver converts those into fail-closed denials.
	GetVacation(ctx context.Context, vacationID string) (*models.Vacation, error)
}

// MessageRepository defines the interface for message storage operations.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) (string, error) // Returns new message ID
	GetByID(ctx context.Context, vacationID, messageID string) (*models.Message, error)
	ListByVacation(ctx context.Context, vacationID string, paginationParams map[string]string) ([]*models.Message, error)
	Update(ctx context.Context, msg *models.Message) error
	Delete(ctx context.Context, vacationID, messageID string) error
}

// AuditRepository defines the interface for audit log storage operations.
type AuditRepository interface {
	Create(ctx context.Context, logEntry models.AuditLog) error
}
