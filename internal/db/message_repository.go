package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv" // For parsing pagination params

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tripmate-backend-go/internal/models"
)

const (
	vacationsCollection = "vacations"
	messagesCollection  = "messages"
)

// firestoreMessageRepository implements the MessageRepository interface using
// Firestore. Messages live in a subcollection under their vacation document.
type firestoreMessageRepository struct {
	client *firestore.Client
}

// NewFirestoreMessageRepository creates a new instance of firestoreMessageRepository.
func NewFirestoreMessageRepository(client *firestore.Client) MessageRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for MessageRepository.")
	}
	return &firestoreMessageRepository{client: client}
}

func (r *firestoreMessageRepository) messages(vacationID string) *firestore.CollectionRef {
	return r.client.Collection(vacationsCollection).Doc(vacationID).Collection(messagesCollection)
}

// Create adds a new message document with an auto-generated ID.
// CreatedAt and UpdatedAt fields are handled by serverTimestamp.
func (r *firestoreMessageRepository) Create(ctx context.Context, msg *models.Message) (string, error) {
	if msg.VacationID == "" {
		return "", errors.New("message vacationID cannot be empty for Create operation")
	}
	docRef := r.messages(msg.VacationID).NewDoc()
	msg.ID = docRef.ID // Set the ID in the model before saving

	if _, err := docRef.Create(ctx, msg); err != nil {
		return "", fmt.Errorf("failed to create message: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a message document by its ID.
func (r *firestoreMessageRepository) GetByID(ctx context.Context, vacationID, messageID string) (*models.Message, error) {
	if vacationID == "" || messageID == "" {
		return nil, errors.New("vacationID and messageID cannot be empty for GetByID operation")
	}
	docSnap, err := r.messages(vacationID).Doc(messageID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("message with ID '%s' not found: %w", messageID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get message with ID '%s': %w", messageID, err)
	}

	var msg models.Message
	if err := docSnap.DataTo(&msg); err != nil {
		return nil, fmt.Errorf("failed to decode message data for ID '%s': %w", messageID, err)
	}
	msg.ID = docSnap.Ref.ID // Ensure ID is populated
	msg.VacationID = vacationID

	return &msg, nil
}

// ListByVacation retrieves messages for a vacation in chronological order.
// Pagination is basic: supports "limit" and "startAfter" (document ID).
func (r *firestoreMessageRepository) ListByVacation(ctx context.Context, vacationID string, paginationParams map[string]string) ([]*models.Message, error) {
	if vacationID == "" {
		return nil, errors.New("vacationID cannot be empty for ListByVacation operation")
	}

	query := r.messages(vacationID).OrderBy("createdAt", firestore.Asc)

	if limitStr, ok := paginationParams["limit"]; ok {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			query = query.Limit(limit)
		}
	}
	if startAfterDocID, ok := paginationParams["startAfter"]; ok && startAfterDocID != "" {
		startAfterSnap, err := r.messages(vacationID).Doc(startAfterDocID).Get(ctx)
		if err == nil {
			query = query.StartAfter(startAfterSnap)
		} else {
			log.Printf("Warning: Could not fetch startAfter document '%s': %v. Pagination may be affected.", startAfterDocID, err)
		}
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var messages []*models.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate messages for vacation '%s': %w", vacationID, err)
		}

		var msg models.Message
		if err := doc.DataTo(&msg); err != nil {
			log.Printf("Error decoding message data (ID: %s) for vacation '%s': %v. Skipping.", doc.Ref.ID, vacationID, err)
			continue
		}
		msg.ID = doc.Ref.ID
		msg.VacationID = vacationID
		messages = append(messages, &msg)
	}

	return messages, nil
}

// Update modifies an existing message document.
func (r *firestoreMessageRepository) Update(ctx context.Context, msg *models.Message) error {
	if msg.VacationID == "" || msg.ID == "" {
		return errors.New("message vacationID and ID cannot be empty for Update operation")
	}
	// UpdatedAt is handled by the serverTimestamp tag in the model.
	if _, err := r.messages(msg.VacationID).Doc(msg.ID).Set(ctx, msg); err != nil {
		return fmt.Errorf("failed to update message '%s': %w", msg.ID, err)
	}
	return nil
}

// Delete removes a message document.
func (r *firestoreMessageRepository) Delete(ctx context.Context, vacationID, messageID string) error {
	if vacationID == "" || messageID == "" {
		return errors.New("vacationID and messageID cannot be empty for Delete operation")
	}
	if _, err := r.messages(vacationID).Doc(messageID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete message '%s': %w", messageID, err)
	}
	return nil
}
