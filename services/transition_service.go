package services

import (
	"context"
	"strings"

	"stayhub-backend/clock"
	"stayhub-backend/models"
	"stayhub-backend/repositories"
)

type statusPair struct {
	from models.BookingStatus
	to   models.BookingStatus
}

type transitionRule struct {
	travelerAllowed bool
	ownerAllowed    bool
	// sweeperOnly transitions are reserved for RoleSystem callers.
	sweeperOnly bool
	// ownerReasonRequired forces a cancellation reason when the owner, not
	// the traveler, triggers the transition.
	ownerReasonRequired bool
}

// transitionRules is the whole booking state machine. Every surface that
// changes a booking status goes through this table; there is no second copy
// of these rules anywhere.
var transitionRules = map[statusPair]transitionRule{
	{models.BookingStatusPending, models.BookingStatusAccepted}:   {ownerAllowed: true},
	{models.BookingStatusPending, models.BookingStatusRejected}:   {ownerAllowed: true},
	{models.BookingStatusPending, models.BookingStatusCancelled}:  {travelerAllowed: true, ownerAllowed: true},
	{models.BookingStatusAccepted, models.BookingStatusCancelled}: {travelerAllowed: true, ownerAllowed: true, ownerReasonRequired: true},
	{models.BookingStatusAccepted, models.BookingStatusCompleted}: {sweeperOnly: true},
}

// TransitionService validates and applies booking status changes.
type TransitionService struct {
	bookings repositories.BookingRepository
	clock    clock.Clock
}

func NewTransitionService(bookings repositories.BookingRepository, clk clock.Clock) *TransitionService {
	return &TransitionService{bookings: bookings, clock: clk}
}

// Transition moves a booking to target on behalf of the given actor. The
// booking row is locked and its status re-read inside the transaction, so of
// two concurrent requests on the same booking the second sees the first one's
// result and fails with a TransitionError.
func (s *TransitionService) Transition(ctx context.Context, actorID uint, role models.ActorRole, bookingID uint, target models.BookingStatus, reason string) (*models.Booking, error) {
	if !target.IsValid() {
		return nil, models.NewValidationError("unknown booking status %q", target)
	}
	if !role.IsValid() {
		return nil, models.NewValidationError("unknown actor role %q", role)
	}

	var result *models.Booking
	err := s.bookings.WithTx(ctx, func(txCtx context.Context) error {
		booking, err := s.bookings.GetByIDForUpdate(txCtx, bookingID)
		if err != nil {
			return err
		}

		rule, ok := transitionRules[statusPair{booking.Status, target}]
		if !ok {
			return &models.TransitionError{From: booking.Status, To: target}
		}

		switch role {
		case models.RoleSystem:
			if !rule.sweeperOnly {
				return models.ErrNotAllowed
			}
			if !booking.CheckOut.Before(s.clock.Now()) {
				return models.NewValidationError("booking has not reached its check-out date yet")
			}
		case models.RoleTraveler:
			if !rule.travelerAllowed || booking.TravelerID != actorID {
				return models.ErrNotAllowed
			}
		case models.RoleOwner:
			if !rule.ownerAllowed || booking.OwnerID != actorID {
				return models.ErrNotAllowed
			}
		}

		trimmedReason := strings.TrimSpace(reason)
		if rule.ownerReasonRequired && role == models.RoleOwner && trimmedReason == "" {
			return models.NewValidationError("a reason is required when the host cancels an accepted booking")
		}

		booking.Status = target
		if target == models.BookingStatusCancelled || target == models.BookingStatusRejected {
			actor := actorID
			cancelledAt := s.clock.Now()
			booking.CancelledBy = &actor
			booking.CancelledAt = &cancelledAt
			if trimmedReason != "" {
				booking.CancellationReason = &trimmedReason
			}
		}
		booking.UpdatedAt = s.clock.Now()

		if err := s.bookings.Save(txCtx, booking); err != nil {
			return err
		}
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
