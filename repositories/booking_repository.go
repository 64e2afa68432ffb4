package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stayhub-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingRepository is the single write path for booking records. All
// services receive it as an injected dependency; nothing else touches the
// bookings table.
type BookingRepository interface {
	// WithTx runs fn inside one transaction. Repository calls made with the
	// context passed to fn share that transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
	// GetByIDForUpdate locks the booking row for the rest of the enclosing
	// transaction, serializing concurrent transitions on the same booking.
	GetByIDForUpdate(ctx context.Context, id uint) (*models.Booking, error)
	Save(ctx context.Context, booking *models.Booking) error
	// CountOverlapping counts PENDING/ACCEPTED bookings on the property whose
	// half-open [check_in, check_out) interval intersects the given one.
	// excludeID, when non-zero, leaves that booking out of the count.
	CountOverlapping(ctx context.Context, propertyID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error)
	ListByTraveler(ctx context.Context, travelerID uint, status models.BookingStatus) ([]models.Booking, error)
	ListByOwner(ctx context.Context, ownerID uint, status models.BookingStatus) ([]models.Booking, error)
	// CompleteExpired advances every ACCEPTED booking with check_out before
	// asOf to COMPLETED in one conditional update and reports how many rows
	// changed. Running it again with the same asOf changes nothing.
	CompleteExpired(ctx context.Context, asOf time.Time) (int64, error)
	OwnerStats(ctx context.Context, ownerID uint) (models.OwnerStats, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return runInTx(ctx, r.db, fn)
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if err := conn(ctx, r.db).Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := conn(ctx, r.db).First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	return &booking, nil
}

func (r *bookingRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to lock booking %d: %w", id, err)
	}
	return &booking, nil
}

func (r *bookingRepository) Save(ctx context.Context, booking *models.Booking) error {
	if err := conn(ctx, r.db).Save(booking).Error; err != nil {
		return fmt.Errorf("failed to save booking %d: %w", booking.ID, err)
	}
	return nil
}

func (r *bookingRepository) CountOverlapping(ctx context.Context, propertyID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	// Half-open intervals: back-to-back stays (a.check_out == b.check_in) do
	// not overlap.
	q := conn(ctx, r.db).
		Model(&models.Booking{}).
		Where("property_id = ?", propertyID).
		Where("status IN ?", models.ActiveBookingStatuses()).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}
	return count, nil
}

func (r *bookingRepository) ListByTraveler(ctx context.Context, travelerID uint, status models.BookingStatus) ([]models.Booking, error) {
	return r.list(ctx, "traveler_id", travelerID, status)
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID uint, status models.BookingStatus) ([]models.Booking, error) {
	return r.list(ctx, "owner_id", ownerID, status)
}

func (r *bookingRepository) list(ctx context.Context, column string, actorID uint, status models.BookingStatus) ([]models.Booking, error) {
	q := conn(ctx, r.db).
		Preload("Property").
		Where(column+" = ?", actorID).
		Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (r *bookingRepository) CompleteExpired(ctx context.Context, asOf time.Time) (int64, error) {
	res := conn(ctx, r.db).
		Model(&models.Booking{}).
		Where("status = ? AND check_out < ?", models.BookingStatusAccepted, asOf).
		Update("status", models.BookingStatusCompleted)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to complete expired bookings: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *bookingRepository) OwnerStats(ctx context.Context, ownerID uint) (models.OwnerStats, error) {
	var stats models.OwnerStats
	err := conn(ctx, r.db).
		Model(&models.Booking{}).
		Select(
			"COUNT(*) AS total_bookings, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending_count, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS confirmed_count, "+
				"COALESCE(SUM(CASE WHEN status IN (?, ?) THEN 1 ELSE 0 END), 0) AS cancelled_count, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed_count, "+
				"COALESCE(SUM(CASE WHEN status IN (?, ?) THEN total_price ELSE 0 END), 0) AS total_revenue, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN total_price ELSE 0 END), 0) AS pending_revenue",
			models.BookingStatusPending,
			models.BookingStatusAccepted,
			models.BookingStatusCancelled, models.BookingStatusRejected,
			models.BookingStatusCompleted,
			models.BookingStatusAccepted, models.BookingStatusCompleted,
			models.BookingStatusPending,
		).
		Where("owner_id = ?", ownerID).
		Scan(&stats).Error
	if err != nil {
		return models.OwnerStats{}, fmt.Errorf("failed to aggregate owner stats: %w", err)
	}
	return stats, nil
}
