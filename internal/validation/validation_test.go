package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tripmate-backend-go/internal/models"
)

func TestValidateID(t *testing.T) {
	require.NoError(t, ValidateID("vacationId", "vac1234567"))
	require.NoError(t, ValidateID("vacationId", strings.Repeat("x", 40)))

	err := ValidateID("vacationId", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "vacationId is required")

	err = ValidateID("userId", "short")
	require.Error(t, err)
	require.Contains(t, err.Error(), "userId must be at least 10 characters")

	// One character below the boundary.
	require.Error(t, ValidateID("userId", strings.Repeat("x", 9)))
	require.NoError(t, ValidateID("userId", strings.Repeat("x", 10)))
}

func TestValidateIDs(t *testing.T) {
	require.NoError(t, ValidateIDs("vac1234567", "user123456"))
	require.Error(t, ValidateIDs("short", "user123456"))
	require.Error(t, ValidateIDs("vac1234567", "short"))
	require.Error(t, ValidateIDs("", ""))
}

func TestValidateMessageContent(t *testing.T) {
	require.NoError(t, ValidateMessageContent("hello", 2000))
	require.NoError(t, ValidateMessageContent(strings.Repeat("a", 2000), 2000))

	err := ValidateMessageContent("", 2000)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot be empty")

	err = ValidateMessageContent(strings.Repeat("a", 2001), 2000)
	require.Error(t, err)
	require.Contains(t, err.Error(), "at most 2000 characters")

	// Non-positive max falls back to the default.
	require.NoError(t, ValidateMessageContent(strings.Repeat("a", DefaultMaxMessageLength), 0))
	require.Error(t, ValidateMessageContent(strings.Repeat("a", DefaultMaxMessageLength+1), 0))
}

func TestValidateMessageType(t *testing.T) {
	for _, valid := range []models.MessageType{
		models.MessageTypeText,
		models.MessageTypeLocation,
		models.MessageTypePhoto,
		models.MessageTypePoll,
	} {
		require.NoError(t, ValidateMessageType(valid))
	}

	err := ValidateMessageType(models.MessageType("gif"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid message type")
}
