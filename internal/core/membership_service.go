package core

import (
	"context"
	"fmt"
	"sort"

	"tripmate-backend-go/internal/db"
	"tripmate-backend-go/internal/models"
)

// membershipService implements the MembershipService interface.
type membershipService struct {
	vacationRepo  db.VacationRepository
	accessService AccessService
}

// NewMembershipService creates a new MembershipService instance.
func NewMembershipService(vr db.VacationRepository, as AccessService) MembershipService {
	return &membershipService{
		vacationRepo:  vr,
		accessService: as,
	}
}

// CheckAccess surfaces the access resolver verbatim.
func (s *membershipService) CheckAccess(ctx context.Context, vacationID, userID string, required models.PermissionTier) models.AccessVerification {
	return s.accessService.VerifyVacationAccess(ctx, vacationID, userID, required)
}

// ListMembers returns the member roster of a vacation, sorted by user ID.
// The caller needs view access; any resolver denial is propagated.
func (s *membershipService) ListMembers(ctx context.Context, vacationID, userID string) ([]models.MemberInfo, error) {
	verification := s.accessService.VerifyVacationAccess(ctx, vacationID, userID, models.PermissionView)
	if !verification.HasAccess {
		return nil, accessDenied(verification)
	}

	vacation, err := s.vacationRepo.GetVacation(ctx, vacationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vacation '%s' for member listing: %w", vacationID, err)
	}
	if vacation == nil {
		// Deleted between the access check and this read.
		return nil, accessDenied(models.AccessVerification{
			Code:   models.DenialVacationNotFound,
			Reason: "Vacation not found",
		})
	}

	members := make([]models.MemberInfo, 0, len(vacation.Members))
	for id, membership := range vacation.Members {
		members = append(members, models.MemberInfo{
			UserID:      id,
			Role:        membership.Role,
			Permissions: membership.Derived(),
		})
	}
	sort.Slice(members, func(i, j int) bool { return members[i].UserID < members[j].UserID })

	return members, nil
}
