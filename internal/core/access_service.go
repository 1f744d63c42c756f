package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tripmate-backend-go/internal/db"
	"tripmate-backend-go/internal/models"
	"tripmate-backend-go/internal/validation"
)

// accessService implements the AccessService interface. It holds no state
// between calls; concurrent invocations are independent.
type accessService struct {
	vacationRepo db.VacationRepository
	logger       *zap.Logger
}

// NewAccessService creates a new AccessService instance.
func NewAccessService(vr db.VacationRepository, logger *zap.Logger) AccessService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &accessService{
		vacationRepo: vr,
		logger:       logger,
	}
}

func denied(code models.DenialCode, reason string) models.AccessVerification {
	return models.AccessVerification{HasAccess: false, Code: code, Reason: reason}
}

// VerifyVacationAccess decides whether userID meets the required permission
// tier on vacationID. The check is a single read against the membership
// store; malformed input is rejected before that read happens. Store
// failures are logged server-side and converted into a generic denial so the
// caller never sees a grant out of an ambiguous fetch.
func (s *accessService) VerifyVacationAccess(ctx context.Context, vacationID, userID string, required models.PermissionTier) models.AccessVerification {
	if err := validation.ValidateIDs(vacationID, userID); err != nil {
		return denied(models.DenialInvalidInput, err.Error())
	}
	if !required.IsValid() {
		return denied(models.DenialInvalidInput, fmt.Sprintf("invalid permission tier '%s'", required))
	}

	vacation, err := s.vacationRepo.GetVacation(ctx, vacationID)
	if err != nil {
		// Fail closed: a store failure is a denial, never a grant.
		s.logger.Error("vacation access verification failed",
			zap.String("vacationId", vacationID),
			zap.String("userId", userID),
			zap.Error(err),
		)
		return denied(models.DenialVerificationFailed, "Failed to verify vacation access")
	}
	if vacation == nil {
		return denied(models.DenialVacationNotFound, "Vacation not found")
	}

	membership, ok := vacation.Members[userID]
	if !ok {
		return denied(models.DenialNotMember, "User is not a member of this vacation")
	}

	if !membership.Role.Satisfies(required) {
		result := denied(models.DenialInsufficientRole,
			fmt.Sprintf("Role '%s' does not grant '%s' access", membership.Role, required))
		result.UserRole = membership.Role
		return result
	}

	permissions := membership.Derived()
	return models.AccessVerification{
		HasAccess:   true,
		UserRole:    membership.Role,
		Permissions: &permissions,
	}
}

// VerifyMessagePermissions decides per-operation message authorization.
// Baseline membership (view tier) is always resolved first; no operation is
// permitted without it. Authorship grants a strict subset of what the owner
// role grants: authors may only act on their own messages, owners on anyone's.
func (s *accessService) VerifyMessagePermissions(ctx context.Context, vacationID, userID string, op models.MessageOperation, messageAuthorID string) models.MessagePermission {
	baseline := s.VerifyVacationAccess(ctx, vacationID, userID, models.PermissionView)
	if !baseline.HasAccess {
		return models.MessagePermission{
			CanPerform: false,
			UserRole:   baseline.UserRole,
			Code:       baseline.Code,
			Reason:     baseline.Reason,
		}
	}

	switch op {
	case models.OperationRead, models.OperationSend:
		// Any member may read and send.
		return models.MessagePermission{CanPerform: true, UserRole: baseline.UserRole}
	case models.OperationEdit, models.OperationDelete:
		if baseline.UserRole == models.RoleOwner || userID == messageAuthorID {
			return models.MessagePermission{CanPerform: true, UserRole: baseline.UserRole}
		}
		return models.MessagePermission{
			CanPerform: false,
			UserRole:   baseline.UserRole,
			Code:       models.DenialNotAuthor,
			Reason:     fmt.Sprintf("You can only %s your own messages", op),
		}
	}

	// Closed operation set, no default-allow.
	return models.MessagePermission{
		CanPerform: false,
		UserRole:   baseline.UserRole,
		Code:       models.DenialInvalidOperation,
		Reason:     "Invalid operation",
	}
}
