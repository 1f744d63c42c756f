package validation

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tripmate-backend-go/internal/models"
)

const (
	// MinIDLength is a structural sanity check on opaque entity IDs, not a
	// format guarantee. Firebase push IDs and Auth UIDs are both longer.
	MinIDLength = 10

	// DefaultMaxMessageLength bounds message content when no limit is configured.
	DefaultMaxMessageLength = 2000
)

// ValidateID checks the structural shape of a single entity ID.
func ValidateID(field, id string) error {
	return validation.Validate(id,
		validation.Required.Error(fmt.Sprintf("%s is required", field)),
		validation.Length(MinIDLength, 0).Error(fmt.Sprintf("%s must be at least %d characters", field, MinIDLength)),
	)
}

// ValidateIDs validates a vacation/user ID pair. Guards run before the
// resolvers touch the membership store, so malformed requests never cost a
// store round-trip.
func ValidateIDs(vacationID, userID string) error {
	if err := ValidateID("vacationId", vacationID); err != nil {
		return err
	}
	return ValidateID("userId", userID)
}

// ValidateMessageContent checks that content is non-empty and within the
// configured maximum length. A non-positive maxLength falls back to the default.
func ValidateMessageContent(content string, maxLength int) error {
	if maxLength <= 0 {
		maxLength = DefaultMaxMessageLength
	}
	return validation.Validate(content,
		validation.Required.Error("message content cannot be empty"),
		validation.Length(1, maxLength).Error(fmt.Sprintf("message content must be at most %d characters", maxLength)),
	)
}

// ValidateMessageType checks the type against the closed whitelist.
func ValidateMessageType(t models.MessageType) error {
	if !t.IsValid() {
		return fmt.Errorf("invalid message type '%s'", t)
	}
	return nil
}
