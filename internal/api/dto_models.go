package api

import "tripmate-backend-go/internal/models"

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message or code
	Details string `json:"details,omitempty"` // More specific details about the error, if available
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MemberListResponse wraps the member roster of a vacation.
type MemberListResponse struct {
	VacationID string              `json:"vacationId"`
	Members    []models.MemberInfo `json:"members"`
	Count      int                 `json:"count"`
}

// MessageListResponse wraps a page of vacation messages.
type MessageListResponse struct {
	VacationID string            `json:"vacationId"`
	Messages   []*models.Message `json:"messages"`
	Count      int               `json:"count"`
}
