package services

import (
	"context"

	"stayhub-backend/models"
	"stayhub-backend/repositories"
)

// StatsService serves read-only booking projections for hosts.
type StatsService struct {
	bookings repositories.BookingRepository
}

func NewStatsService(bookings repositories.BookingRepository) *StatsService {
	return &StatsService{bookings: bookings}
}

// OwnerStats aggregates booking counts and revenue over every booking whose
// owner snapshot matches ownerID, regardless of who owns the property today.
func (s *StatsService) OwnerStats(ctx context.Context, ownerID uint) (models.OwnerStats, error) {
	if ownerID == 0 {
		return models.OwnerStats{}, models.NewValidationError("owner is required")
	}
	return s.bookings.OwnerStats(ctx, ownerID)
}
