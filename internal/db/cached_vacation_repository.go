package db

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tripmate-backend-go/internal/cache"
	"tripmate-backend-go/internal/models"
)

// cachedVacationRepository decorates a VacationRepository with a short-TTL
// read-through snapshot cache. Only existing vacations are cached: absence
// must stay fresh because a missing membership entry means zero access.
// Cache failures fall through to the underlying store read.
type cachedVacationRepository struct {
	inner VacationRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedVacationRepository wraps inner with a read-through cache.
func NewCachedVacationRepository(inner VacationRepository, c cache.Cache, ttl time.Duration) VacationRepository {
	if inner == nil {
		log.Fatal("Inner repository is not initialized for CachedVacationRepository.")
	}
	if c == nil || ttl <= 0 {
		return inner
	}
	return &cachedVacationRepository{inner: inner, cache: c, ttl: ttl}
}

func vacationCacheKey(vacationID string) string {
	return "vacation:" + vacationID
}

// GetVacation serves a cached snapshot when present, otherwise reads through
// to the membership store and caches the result.
func (r *cachedVacationRepository) GetVacation(ctx context.Context, vacationID string) (*models.Vacation, error) {
	key := vacationCacheKey(vacationID)

	if raw, err := r.cache.Get(ctx, key); err == nil && raw != "" {
		var vacation models.Vacation
		if err := json.Unmarshal([]byte(raw), &vacation); err == nil {
			vacation.ID = vacationID
			return &vacation, nil
		}
		log.Printf("Warning: Could not decode cached vacation '%s', falling back to store.", vacationID)
	}

	vacation, err := r.inner.GetVacation(ctx, vacationID)
	if err != nil || vacation == nil {
		return vacation, err
	}

	if raw, err := json.Marshal(vacation); err == nil {
		if err := r.cache.Set(ctx, key, string(raw), r.ttl); err != nil {
			log.Printf("Warning: Could not cache vacation '%s': %v", vacationID, err)
		}
	}
	return vacation, nil
}
