package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"tripmate-backend-go/internal/db"
	"tripmate-backend-go/internal/events"
	"tripmate-backend-go/internal/models"
	"tripmate-backend-go/internal/validation"
)

// messageService implements the MessageService interface. Every operation is
// guarded by the message permission resolver before it touches the message
// store; content and type guards run even earlier so malformed requests never
// cost a store round-trip.
type messageService struct {
	messageRepo      db.MessageRepository
	accessService    AccessService
	auditService     AuditService
	publisher        events.Publisher
	maxMessageLength int
}

// NewMessageService creates a new MessageService instance.
func NewMessageService(
	mr db.MessageRepository,
	as AccessService,
	audit AuditService,
	publisher events.Publisher,
	maxMessageLength int,
) (MessageService, error) {
	if mr == nil || as == nil {
		return nil, errors.New("messageService: message repository and access service are required")
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if maxMessageLength <= 0 {
		maxMessageLength = validation.DefaultMaxMessageLength
	}
	return &messageService{
		messageRepo:      mr,
		accessService:    as,
		auditService:     audit,
		publisher:        publisher,
		maxMessageLength: maxMessageLength,
	}, nil
}

// audit records a best-effort audit entry. Audit failures never fail the
// originating operation.
func (s *messageService) audit(ctx context.Context, entry models.AuditLog) {
	if s.auditService == nil {
		return
	}
	if err := s.auditService.CreateAuditLog(ctx, entry); err != nil {
		log.Printf("Warning: failed to create audit log for %s (targetID: %s): %v", entry.Action, entry.TargetID, err)
	}
}

// publish emits a best-effort message event.
func (s *messageService) publish(eventType string, msg *models.Message) {
	event := events.MessageEvent{
		Type:       eventType,
		VacationID: msg.VacationID,
		MessageID:  msg.ID,
		AuthorID:   msg.AuthorID,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.publisher.PublishMessageEvent(event); err != nil {
		log.Printf("Warning: failed to publish %s event (messageID: %s): %v", eventType, msg.ID, err)
	}
}

// SendMessage posts a new message after validating content and resolving
// send authorization.
func (s *messageService) SendMessage(ctx context.Context, vacationID, userID string, req models.SendMessageRequest) (*models.Message, error) {
	messageType := models.MessageType(req.Type)
	if err := validation.ValidateMessageType(messageType); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validation.ValidateMessageContent(req.Content, s.maxMessageLength); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	permission := s.accessService.VerifyMessagePermissions(ctx, vacationID, userID, models.OperationSend, "")
	if !permission.CanPerform {
		return nil, permissionDenied(permission)
	}

	newMessage := &models.Message{
		VacationID: vacationID,
		AuthorID:   userID,
		Type:       messageType,
		Content:    req.Content,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	messageID, err := s.messageRepo.Create(ctx, newMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to create message in repository: %w", err)
	}
	newMessage.ID = messageID

	s.audit(ctx, models.AuditLog{
		UserID:     userID,
		Action:     "MESSAGE_SEND",
		TargetType: "MESSAGE",
		TargetID:   newMessage.ID,
		Timestamp:  time.Now().UTC(),
		Details: map[string]interface{}{
			"vacationId": vacationID,
			"type":       string(messageType),
		},
	})
	s.publish(events.EventMessageSent, newMessage)

	return newMessage, nil
}

// ListMessages returns a vacation's messages for any member.
func (s *messageService) ListMessages(ctx context.Context, vacationID, userID string, paginationParams map[string]string) ([]*models.Message, error) {
	permission := s.accessService.VerifyMessagePermissions(ctx, vacationID, userID, models.OperationRead, "")
	if !permission.CanPerform {
		return nil, permissionDenied(permission)
	}

	messages, err := s.messageRepo.ListByVacation(ctx, vacationID, paginationParams)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages for vacation '%s': %w", vacationID, err)
	}
	return messages, nil
}

// EditMessage replaces a message's content. The message is fetched first so
// the resolver can apply the owner-or-author rule against its real author.
func (s *messageService) EditMessage(ctx context.Context, vacationID, userID, messageID string, req models.EditMessageRequest) (*models.Message, error) {
	if err := validation.ValidateMessageContent(req.Content, s.maxMessageLength); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, err := s.messageRepo.GetByID(ctx, vacationID, messageID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: message with ID '%s'", ErrMessageNotFound, messageID)
		}
		return nil, fmt.Errorf("failed to get message '%s' for edit: %w", messageID, err)
	}

	permission := s.accessService.VerifyMessagePermissions(ctx, vacationID, userID, models.OperationEdit, existing.AuthorID)
	if !permission.CanPerform {
		return nil, permissionDenied(permission)
	}

	existing.Content = req.Content
	existing.Edited = true
	existing.UpdatedAt = time.Now().UTC()

	if err := s.messageRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update message '%s': %w", messageID, err)
	}

	s.audit(ctx, models.AuditLog{
		UserID:     userID,
		Action:     "MESSAGE_EDIT",
		TargetType: "MESSAGE",
		TargetID:   messageID,
		Timestamp:  time.Now().UTC(),
		Details: map[string]interface{}{
			"vacationId": vacationID,
			"authorId":   existing.AuthorID,
		},
	})
	s.publish(events.EventMessageEdited, existing)

	return existing, nil
}

// DeleteMessage removes a message under the same owner-or-author rule.
func (s *messageService) DeleteMessage(ctx context.Context, vacationID, userID, messageID string) error {
	existing, err := s.messageRepo.GetByID(ctx, vacationID, messageID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: message with ID '%s'", ErrMessageNotFound, messageID)
		}
		return fmt.Errorf("failed to get message '%s' for deletion: %w", messageID, err)
	}

	permission := s.accessService.VerifyMessagePermissions(ctx, vacationID, userID, models.OperationDelete, existing.AuthorID)
	if !permission.CanPerform {
		return permissionDenied(permission)
	}

	if err := s.messageRepo.Delete(ctx, vacationID, messageID); err != nil {
		return fmt.Errorf("failed to delete message '%s': %w", messageID, err)
	}

	s.audit(ctx, models.AuditLog{
		UserID:     userID,
		Action:     "MESSAGE_DELETE",
		TargetType: "MESSAGE",
		TargetID:   messageID,
		Timestamp:  time.Now().UTC(),
		Details: map[string]interface{}{
			"vacationId": vacationID,
			"authorId":   existing.AuthorID,
		},
	})
	s.publish(events.EventMessageDeleted, existing)

	return nil
}
