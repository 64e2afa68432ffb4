package services

import (
	"context"
	"time"

	"stayhub-backend/repositories"
)

// AvailabilityChecker decides whether a date range collides with the active
// (PENDING or ACCEPTED) bookings already held on a property.
type AvailabilityChecker struct {
	bookings repositories.BookingRepository
}

func NewAvailabilityChecker(bookings repositories.BookingRepository) *AvailabilityChecker {
	return &AvailabilityChecker{bookings: bookings}
}

// HasConflict reports whether [checkIn, checkOut) intersects any active
// booking on the property. excludeBookingID lets a booking being re-evaluated
// ignore itself; pass 0 otherwise.
func (a *AvailabilityChecker) HasConflict(ctx context.Context, propertyID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	count, err := a.bookings.CountOverlapping(ctx, propertyID, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back intervals do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
