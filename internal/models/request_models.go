package models

// SendMessageRequest represents the request body for posting a new message.
type SendMessageRequest struct {
	Type    string `json:"type" binding:"required"`    // One of the MessageType whitelist
	Content string `json:"content" binding:"required"` // Non-empty, bounded by MAX_MESSAGE_LENGTH
}

// EditMessageRequest represents the request body for editing an existing message.
type EditMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
