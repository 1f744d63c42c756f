package core

import (
	"errors"

	"tripmate-backend-go/internal/models"
)

// Custom errors shared by the core services.
var (
	ErrMessageNotFound = errors.New("message not found")
	ErrInvalidInput    = errors.New("invalid input")
)

// AccessDeniedError carries a resolver denial through the error-returning
// service layer so handlers can map the code to an HTTP status without
// parsing reason strings.
type AccessDeniedError struct {
	Code   models.DenialCode
	Reason string
}

func (e *AccessDeniedError) Error() string {
	return e.Reason
}

// accessDenied converts a failed access verification into an error.
func accessDenied(v models.AccessVerification) error {
	return &AccessDeniedError{Code: v.Code, Reason: v.Reason}
}

// permissionDenied converts a failed message permission result into an error.
func permissionDenied(p models.MessagePermission) error {
	return &AccessDeniedError{Code: p.Code, Reason: p.Reason}
}
