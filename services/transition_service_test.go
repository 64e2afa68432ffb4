package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayhub-backend/clock"
	"stayhub-backend/models"
)

const (
	travelerID uint = 1
	ownerID    uint = 7
	strangerID uint = 99
)

func pendingBooking() models.Booking {
	return models.Booking{
		ID: 1, PropertyID: 10, TravelerID: travelerID, OwnerID: ownerID,
		Status:  models.BookingStatusPending,
		CheckIn: date(2025, 11, 1), CheckOut: date(2025, 11, 5),
	}
}

func acceptedBooking() models.Booking {
	b := pendingBooking()
	b.Status = models.BookingStatusAccepted
	return b
}

func TestTransitionService_Transition(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	newSvc := func(seed models.Booking) (*TransitionService, *fakeBookingRepo) {
		repo := newFakeBookingRepo(seed)
		return NewTransitionService(repo, clock.NewFixed(now)), repo
	}

	t.Run("owner accepts pending booking", func(t *testing.T) {
		svc, repo := newSvc(pendingBooking())

		booking, err := svc.Transition(context.Background(), ownerID, models.RoleOwner, 1, models.BookingStatusAccepted, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if booking.Status != models.BookingStatusAccepted {
			t.Fatalf("expected ACCEPTED, got %s", booking.Status)
		}
		stored := repo.bookings[1]
		if stored.Status != models.BookingStatusAccepted {
			t.Fatalf("expected stored status ACCEPTED, got %s", stored.Status)
		}
		if !stored.UpdatedAt.Equal(now) {
			t.Fatalf("expected updated_at refreshed to %v, got %v", now, stored.UpdatedAt)
		}
	})

	t.Run("traveler cannot accept", func(t *testing.T) {
		svc, _ := newSvc(pendingBooking())

		_, err := svc.Transition(context.Background(), travelerID, models.RoleTraveler, 1, models.BookingStatusAccepted, "")
		if !errors.Is(err, models.ErrNotAllowed) {
			t.Fatalf("expected ErrNotAllowed, got %v", err)
		}
	})

	t.Run("a different owner cannot accept", func(t *testing.T) {
		svc, _ := newSvc(pendingBooking())

		_, err := svc.Transition(context.Background(), strangerID, models.RoleOwner, 1, models.BookingStatusAccepted, "")
		if !errors.Is(err, models.ErrNotAllowed) {
			t.Fatalf("expected ErrNotAllowed, got %v", err)
		}
	})

	t.Run("owner rejects pending booking with reason", func(t *testing.T) {
		svc, repo := newSvc(pendingBooking())

		_, err := svc.Transition(context.Background(), ownerID, models.RoleOwner, 1, models.BookingStatusRejected, "dates blocked for repairs")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored := repo.bookings[1]
		if stored.CancelledBy == nil || *stored.CancelledBy != ownerID {
			t.Fatal("expected cancelled_by to record the owner")
		}
		if stored.CancelledAt == nil || !stored.CancelledAt.Equal(now) {
			t.Fatal("expected cancelled_at to be set to now")
		}
		if stored.CancellationReason == nil || *stored.CancellationReason != "dates blocked for repairs" {
			t.Fatal("expected cancellation reason to be recorded")
		}
	})

	t.Run("traveler cancels pending booking without reason", func(t *testing.T) {
		svc, repo := newSvc(pendingBooking())

		_, err := svc.Transition(context.Background(), travelerID, models.RoleTraveler, 1, models.BookingStatusCancelled, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored := repo.bookings[1]
		if stored.Status != models.BookingStatusCancelled {
			t.Fatalf("expected CANCELLED, got %s", stored.Status)
		}
		if stored.CancellationReason != nil {
			t.Fatal("reason must stay empty when none was given")
		}
	})

	t.Run("owner cancelling accepted booking requires a reason", func(t *testing.T) {
		svc, _ := newSvc(acceptedBooking())

		_, err := svc.Transition(context.Background(), ownerID, models.RoleOwner, 1, models.BookingStatusCancelled, "   ")
		var validationErr *models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}

		_, err = svc.Transition(context.Background(), ownerID, models.RoleOwner, 1, models.BookingStatusCancelled, "double booked")
		if err != nil {
			t.Fatalf("expected cancellation with reason to succeed, got %v", err)
		}
	})

	t.Run("traveler cancels accepted booking without reason", func(t *testing.T) {
		svc, _ := newSvc(acceptedBooking())

		_, err := svc.Transition(context.Background(), travelerID, models.RoleTraveler, 1, models.BookingStatusCancelled, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("terminal states allow no transitions", func(t *testing.T) {
		for _, terminal := range []models.BookingStatus{
			models.BookingStatusRejected,
			models.BookingStatusCancelled,
			models.BookingStatusCompleted,
		} {
			seed := pendingBooking()
			seed.Status = terminal
			svc, _ := newSvc(seed)

			_, err := svc.Transition(context.Background(), travelerID, models.RoleTraveler, 1, models.BookingStatusCancelled, "")
			var transitionErr *models.TransitionError
			if !errors.As(err, &transitionErr) {
				t.Fatalf("expected TransitionError from %s, got %v", terminal, err)
			}
		}
	})

	t.Run("pending cannot skip to completed", func(t *testing.T) {
		svc, _ := newSvc(pendingBooking())

		_, err := svc.Transition(context.Background(), 0, models.RoleSystem, 1, models.BookingStatusCompleted, "")
		var transitionErr *models.TransitionError
		if !errors.As(err, &transitionErr) {
			t.Fatalf("expected TransitionError, got %v", err)
		}
	})

	t.Run("system completes accepted booking after checkout", func(t *testing.T) {
		laterSvc := NewTransitionService(newFakeBookingRepo(acceptedBooking()), clock.NewFixed(date(2025, 11, 6)))

		booking, err := laterSvc.Transition(context.Background(), 0, models.RoleSystem, 1, models.BookingStatusCompleted, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if booking.Status != models.BookingStatusCompleted {
			t.Fatalf("expected COMPLETED, got %s", booking.Status)
		}
	})

	t.Run("system cannot complete before checkout", func(t *testing.T) {
		svc, _ := newSvc(acceptedBooking())

		_, err := svc.Transition(context.Background(), 0, models.RoleSystem, 1, models.BookingStatusCompleted, "")
		var validationErr *models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("only the system may complete", func(t *testing.T) {
		laterSvc := NewTransitionService(newFakeBookingRepo(acceptedBooking()), clock.NewFixed(date(2025, 11, 6)))

		_, err := laterSvc.Transition(context.Background(), ownerID, models.RoleOwner, 1, models.BookingStatusCompleted, "")
		if !errors.Is(err, models.ErrNotAllowed) {
			t.Fatalf("expected ErrNotAllowed, got %v", err)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, _ := newSvc(pendingBooking())

		_, err := svc.Transition(context.Background(), ownerID, models.RoleOwner, 404, models.BookingStatusAccepted, "")
		if !errors.Is(err, models.ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("unknown target status", func(t *testing.T) {
		svc, _ := newSvc(pendingBooking())

		_, err := svc.Transition(context.Background(), ownerID, models.RoleOwner, 1, "ARCHIVED", "")
		var validationErr *models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("second concurrent transition fails on re-read", func(t *testing.T) {
		svc, _ := newSvc(pendingBooking())

		if _, err := svc.Transition(context.Background(), ownerID, models.RoleOwner, 1, models.BookingStatusAccepted, ""); err != nil {
			t.Fatalf("first transition failed: %v", err)
		}
		// A request that raced the first one now re-reads ACCEPTED and must
		// fail instead of silently overwriting.
		_, err := svc.Transition(context.Background(), ownerID, models.RoleOwner, 1, models.BookingStatusAccepted, "")
		var transitionErr *models.TransitionError
		if !errors.As(err, &transitionErr) {
			t.Fatalf("expected TransitionError, got %v", err)
		}
	})
}
