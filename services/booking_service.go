package services

import (
	"context"
	"time"

	"stayhub-backend/clock"
	"stayhub-backend/models"
	"stayhub-backend/repositories"

	"github.com/jinzhu/now"
)

// BookingService handles reservation requests and read access to bookings.
// All status changes go through TransitionService instead.
type BookingService struct {
	bookings     repositories.BookingRepository
	properties   repositories.PropertyRepository
	availability *AvailabilityChecker
	clock        clock.Clock
}

func NewBookingService(
	bookings repositories.BookingRepository,
	properties repositories.PropertyRepository,
	availability *AvailabilityChecker,
	clk clock.Clock,
) *BookingService {
	return &BookingService{
		bookings:     bookings,
		properties:   properties,
		availability: availability,
		clock:        clk,
	}
}

type CreateBookingInput struct {
	TravelerID uint
	PropertyID uint
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice float64
}

// CreateBooking validates the request and persists a new PENDING booking.
// The availability check and the insert run inside one transaction that holds
// the property row lock, so two overlapping requests for the same property
// serialize and the second one fails the conflict check.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	if in.TravelerID == 0 || in.PropertyID == 0 {
		return nil, models.NewValidationError("traveler and property are required")
	}
	if in.Guests <= 0 {
		return nil, models.NewValidationError("number of guests must be positive")
	}
	if in.TotalPrice < 0 {
		return nil, models.NewValidationError("total price cannot be negative")
	}
	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return nil, models.NewValidationError("check-in and check-out dates are required")
	}
	today := now.New(s.clock.Now()).BeginningOfDay()
	if in.CheckIn.Before(today) {
		return nil, models.NewValidationError("check-in date cannot be in the past")
	}
	if !in.CheckOut.After(in.CheckIn) {
		return nil, models.NewValidationError("check-out date must be after check-in date")
	}

	var booking *models.Booking
	err := s.bookings.WithTx(ctx, func(txCtx context.Context) error {
		property, err := s.properties.GetByIDForUpdate(txCtx, in.PropertyID)
		if err != nil {
			return err
		}
		if !property.Available {
			return models.NewValidationError("property is not accepting bookings")
		}
		if in.Guests > property.MaxGuests {
			return models.NewValidationError("property accommodates at most %d guests", property.MaxGuests)
		}

		conflict, err := s.availability.HasConflict(txCtx, in.PropertyID, in.CheckIn, in.CheckOut, 0)
		if err != nil {
			return err
		}
		if conflict {
			return models.ErrDatesUnavailable
		}

		booking = &models.Booking{
			PropertyID:     in.PropertyID,
			TravelerID:     in.TravelerID,
			OwnerID:        property.OwnerID,
			CheckIn:        in.CheckIn,
			CheckOut:       in.CheckOut,
			NumberOfGuests: in.Guests,
			TotalPrice:     in.TotalPrice,
			Status:         models.BookingStatusPending,
		}
		return s.bookings.Create(txCtx, booking)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// GetBooking returns a booking to its traveler or its owner; anyone else is
// rejected.
func (s *BookingService) GetBooking(ctx context.Context, actorID, bookingID uint) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.TravelerID != actorID && booking.OwnerID != actorID {
		return nil, models.ErrNotAllowed
	}
	return booking, nil
}

// ListBookings returns the actor's bookings: as traveler those they made, as
// owner those on their properties. status filters when non-empty.
func (s *BookingService) ListBookings(ctx context.Context, actorID uint, role models.ActorRole, status models.BookingStatus) ([]models.Booking, error) {
	if status != "" && !status.IsValid() {
		return nil, models.NewValidationError("unknown booking status %q", status)
	}
	switch role {
	case models.RoleTraveler:
		return s.bookings.ListByTraveler(ctx, actorID, status)
	case models.RoleOwner:
		return s.bookings.ListByOwner(ctx, actorID, status)
	default:
		return nil, models.NewValidationError("unknown actor role %q", role)
	}
}
