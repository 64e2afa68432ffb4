package services

import (
	"context"
	"log"
	"time"

	"stayhub-backend/clock"
	"stayhub-backend/repositories"
)

// SweeperService advances expired ACCEPTED bookings to COMPLETED on a
// schedule. PENDING bookings are never touched, even when their dates have
// passed; resolving those is left to the owner.
type SweeperService struct {
	bookings repositories.BookingRepository
	clock    clock.Clock
}

func NewSweeperService(bookings repositories.BookingRepository, clk clock.Clock) *SweeperService {
	return &SweeperService{bookings: bookings, clock: clk}
}

// SweepCompletions completes every ACCEPTED booking whose check-out date is
// before asOf. The whole sweep is a single conditional update, so it commits
// fully or not at all and a repeated run is a no-op.
func (s *SweeperService) SweepCompletions(ctx context.Context, asOf time.Time) (int64, error) {
	if asOf.IsZero() {
		asOf = s.clock.Now()
	}
	count, err := s.bookings.CompleteExpired(ctx, asOf)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Printf("completion sweep: %d booking(s) marked completed as of %s", count, asOf.Format("2006-01-02"))
	}
	return count, nil
}

// Run sweeps on every tick until ctx is cancelled. A failed sweep is logged
// and retried on the next tick.
func (s *SweeperService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepCompletions(ctx, s.clock.Now()); err != nil {
				log.Printf("completion sweep failed, deferring to next run: %v", err)
			}
		}
	}
}
