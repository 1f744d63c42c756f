package models

import "time"

// MessageType is the closed whitelist of message kinds the group chat accepts.
type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeLocation MessageType = "location"
	MessageTypePhoto    MessageType = "photo"
	MessageTypePoll     MessageType = "poll"
)

// IsValid reports whether t is one of the whitelisted message types.
func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeText, MessageTypeLocation, MessageTypePhoto, MessageTypePoll:
		return true
	}
	return false
}

// Message is a group-chat entry belonging to a vacation. Messages live in
// Firestore under vacations/{vacationId}/messages; the membership record
// itself stays in the Realtime Database.
type Message struct {
	ID         string      `json:"id" firestore:"-"` // Document ID, auto-generated
	VacationID string      `json:"vacationId" firestore:"vacationId"`
	AuthorID   string      `json:"authorId" firestore:"authorId"` // Firebase Auth UID of the sender
	Type       MessageType `json:"type" firestore:"type"`
	Content    string      `json:"content" firestore:"content"`
	Edited     bool        `json:"edited,omitempty" firestore:"edited"`
	CreatedAt  time.Time   `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt  time.Time   `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
