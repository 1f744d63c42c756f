package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"tripmate-backend-go/internal/models"
)

func TestVerifyMessagePermissions_ReadAndSendForAnyMember(t *testing.T) {
	repo := &fakeVacationRepo{vacations: map[string]*models.Vacation{testVacationID: newTestVacation()}}
	svc := newTestAccessService(repo)

	for _, userID := range []string{ownerID, editorID, viewerID} {
		for _, op := range []models.MessageOperation{models.OperationRead, models.OperationSend} {
			result := svc.VerifyMessagePermissions(context.Background(), testVacationID, userID, op, "")
			require.True(t, result.CanPerform, "user %q op %q", userID, op)
			require.Empty(t, result.Reason)
		}
	}
}

func TestVerifyMessagePermissions_NonMemberDeniedLikeBaseline(t *testing.T) {
	repo := &fakeVacationRepo{vacations: map[string]*models.Vacation{testVacationID: newTestVacation()}}
	svc := newTestAccessService(repo)

	for _, op := range []models.MessageOperation{models.OperationRead, models.OperationSend, models.OperationEdit, models.OperationDelete} {
		result := svc.VerifyMessagePermissions(context.Background(), testVacationID, strangerID, op, strangerID)
		require.False(t, result.CanPerform, "op %q", op)
		require.Equal(t, models.DenialNotMember, result.Code)
	}
}

// Authorship grants a strict subset of the owner role's authority: authors
// mutate only their own messages, owners mutate anyone's.
func TestVerifyMessagePermissions_OwnerOrAuthorMatrix(t *testing.T) {
	repo := &fakeVacationRepo{vacations: map[string]*models.Vacation{testVacationID: newTestVacation()}}
	svc := newTestAccessService(repo)

	cases := []struct {
		name     string
		userID   string
		authorID string
		want     bool
	}{
		{"owner on someone else's message", ownerID, editorID, true},
		{"owner on own message", ownerID, ownerID, true},
		{"editor on own message", editorID, editorID, true},
		{"editor on someone else's message", editorID, viewerID, false},
		{"viewer on own message", viewerID, viewerID, true},
		{"viewer on someone else's message", viewerID, ownerID, false},
	}

	for _, op := range []models.MessageOperation{models.OperationEdit, models.OperationDelete} {
		for _, tc := range cases {
			result := svc.VerifyMessagePermissions(context.Background(), testVacationID, tc.userID, op, tc.authorID)
			require.Equal(t, tc.want, result.CanPerform, "%s (%s)", tc.name, op)
			if !tc.want {
				require.Equal(t, models.DenialNotAuthor, result.Code)
				require.Contains(t, result.Reason, "your own messages")
			}
		}
	}
}

func TestVerifyMessagePermissions_DenialMessageNamesOperation(t *testing.T) {
	repo := &fakeVacationRepo{vacations: map[string]*models.Vacation{testVacationID: newTestVacation()}}
	svc := newTestAccessService(repo)

	edit := svc.VerifyMessagePermissions(context.Background(), testVacationID, editorID, models.OperationEdit, viewerID)
	require.Equal(t, "You can only edit your own messages", edit.Reason)

	del := svc.VerifyMessagePermissions(context.Background(), testVacationID, editorID, models.OperationDelete, viewerID)
	require.Equal(t, "You can only delete your own messages", del.Reason)
}

func TestVerifyMessagePermissions_InvalidOperationRejected(t *testing.T) {
	repo := &fakeVacationRepo{vacations: map[string]*models.Vacation{testVacationID: newTestVacation()}}
	svc := newTestAccessService(repo)

	result := svc.VerifyMessagePermissions(context.Background(), testVacationID, ownerID, models.MessageOperation("moderate"), "")
	require.False(t, result.CanPerform)
	require.Equal(t, models.DenialInvalidOperation, result.Code)
	require.Equal(t, "Invalid operation", result.Reason)
}

func TestVerifyMessagePermissions_StoreFailureFailsClosed(t *testing.T) {
	repo := &fakeVacationRepo{err: errors.New("rtdb: unavailable")}
	svc := newTestAccessService(repo)

	result := svc.VerifyMessagePermissions(context.Background(), testVacationID, ownerID, models.OperationSend, "")
	require.False(t, result.CanPerform)
	require.Equal(t, models.DenialVerificationFailed, result.Code)
	require.Equal(t, "Failed to verify vacation access", result.Reason)
}

func TestVerifyMessagePermissions_ShortIDsNeverTouchStore(t *testing.T) {
	repo := &fakeVacationRepo{vacations: map[string]*models.Vacation{testVacationID: newTestVacation()}}
	svc := newTestAccessService(repo)

	result := svc.VerifyMessagePermissions(context.Background(), "short", "also-short", models.OperationRead, "")
	require.False(t, result.CanPerform)
	require.Equal(t, models.DenialInvalidInput, result.Code)
	require.Zero(t, repo.calls)
}
