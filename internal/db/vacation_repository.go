package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	rtdb "firebase.google.com/go/v4/db"

	"tripmate-backend-go/internal/models"
)

const vacationsPath = "vacations"

// rtdbVacationRepository implements the VacationRepository interface backed by
// the Firebase Realtime Database, where the app keeps its denormalized
// per-vacation membership maps.
type rtdbVacationRepository struct {
	client *rtdb.Client
}

// NewRTDBVacationRepository creates a new instance of rtdbVacationRepository.
func NewRTDBVacationRepository(client *rtdb.Client) VacationRepository {
	if client == nil {
		log.Fatal("Realtime Database client is not initialized for VacationRepository.")
	}
	return &rtdbVacationRepository{client: client}
}

// GetVacation reads the vacation record at vacations/{vacationID}. An absent
// node decodes to a nil pointer, which is returned as (nil, nil) per the
// store contract; errors are transport failures only.
func (r *rtdbVacationRepository) GetVacation(ctx context.Context, vacationID string) (*models.Vacation, error) {
	if vacationID == "" {
		return nil, errors.New("vacationID cannot be empty for GetVacation operation")
	}

	ref := r.client.NewRef(vacationsPath + "/" + vacationID)

	var vacation *models.Vacation
	if err := ref.Get(ctx, &vacation); err != nil {
		return nil, fmt.Errorf("failed to read vacation '%s': %w", vacationID, err)
	}
	if vacation == nil {
		return nil, nil
	}

	vacation.ID = vacationID
	if vacation.Members == nil {
		// A vacation node without a members map grants nobody anything.
		vacation.Members = map[string]models.Membership{}
	}
	return vacation, nil
}
