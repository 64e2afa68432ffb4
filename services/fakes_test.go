package services

import (
	"context"
	"time"

	"stayhub-backend/models"
	"stayhub-backend/repositories"
)

// fakeBookingRepo is an in-memory BookingRepository for service tests.
// WithTx simply runs fn; the locking semantics under test live in the
// services, not here.
type fakeBookingRepo struct {
	bookings map[uint]*models.Booking
	nextID   uint
	failWith error
}

func newFakeBookingRepo(seed ...models.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[uint]*models.Booking)}
	for i := range seed {
		b := seed[i]
		if b.ID == 0 {
			repo.nextID++
			b.ID = repo.nextID
		} else if b.ID > repo.nextID {
			repo.nextID = b.ID
		}
		repo.bookings[b.ID] = &b
	}
	return repo
}

var _ repositories.BookingRepository = (*fakeBookingRepo)(nil)

func (r *fakeBookingRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if r.failWith != nil {
		return r.failWith
	}
	return fn(ctx)
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.nextID++
	booking.ID = r.nextID
	stored := *booking
	r.bookings[stored.ID] = &stored
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id uint) (*models.Booking, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	booking, ok := r.bookings[id]
	if !ok {
		return nil, models.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) GetByIDForUpdate(ctx context.Context, id uint) (*models.Booking, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeBookingRepo) Save(_ context.Context, booking *models.Booking) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.bookings[booking.ID]; !ok {
		return models.ErrBookingNotFound
	}
	stored := *booking
	r.bookings[stored.ID] = &stored
	return nil
}

func (r *fakeBookingRepo) CountOverlapping(_ context.Context, propertyID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	var count int64
	for _, b := range r.bookings {
		if b.PropertyID != propertyID || !b.Status.IsActive() {
			continue
		}
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) ListByTraveler(_ context.Context, travelerID uint, status models.BookingStatus) ([]models.Booking, error) {
	return r.list(func(b *models.Booking) bool { return b.TravelerID == travelerID }, status)
}

func (r *fakeBookingRepo) ListByOwner(_ context.Context, ownerID uint, status models.BookingStatus) ([]models.Booking, error) {
	return r.list(func(b *models.Booking) bool { return b.OwnerID == ownerID }, status)
}

func (r *fakeBookingRepo) list(match func(*models.Booking) bool, status models.BookingStatus) ([]models.Booking, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := []models.Booking{}
	for _, b := range r.bookings {
		if !match(b) {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) CompleteExpired(_ context.Context, asOf time.Time) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	var count int64
	for _, b := range r.bookings {
		if b.Status == models.BookingStatusAccepted && b.CheckOut.Before(asOf) {
			b.Status = models.BookingStatusCompleted
			b.UpdatedAt = asOf
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) OwnerStats(_ context.Context, ownerID uint) (models.OwnerStats, error) {
	if r.failWith != nil {
		return models.OwnerStats{}, r.failWith
	}
	var stats models.OwnerStats
	for _, b := range r.bookings {
		if b.OwnerID != ownerID {
			continue
		}
		stats.TotalBookings++
		switch b.Status {
		case models.BookingStatusPending:
			stats.PendingCount++
			stats.PendingRevenue += b.TotalPrice
		case models.BookingStatusAccepted:
			stats.ConfirmedCount++
			stats.TotalRevenue += b.TotalPrice
		case models.BookingStatusCompleted:
			stats.CompletedCount++
			stats.TotalRevenue += b.TotalPrice
		case models.BookingStatusCancelled, models.BookingStatusRejected:
			stats.CancelledCount++
		}
	}
	return stats, nil
}

type fakePropertyRepo struct {
	properties map[uint]*models.Property
	nextID     uint
}

func newFakePropertyRepo(seed ...models.Property) *fakePropertyRepo {
	repo := &fakePropertyRepo{properties: make(map[uint]*models.Property)}
	for i := range seed {
		p := seed[i]
		if p.ID == 0 {
			repo.nextID++
			p.ID = repo.nextID
		} else if p.ID > repo.nextID {
			repo.nextID = p.ID
		}
		repo.properties[p.ID] = &p
	}
	return repo
}

var _ repositories.PropertyRepository = (*fakePropertyRepo)(nil)

func (r *fakePropertyRepo) Create(_ context.Context, property *models.Property) error {
	r.nextID++
	property.ID = r.nextID
	stored := *property
	r.properties[stored.ID] = &stored
	return nil
}

func (r *fakePropertyRepo) GetByID(_ context.Context, id uint) (*models.Property, error) {
	property, ok := r.properties[id]
	if !ok {
		return nil, models.ErrPropertyNotFound
	}
	copied := *property
	return &copied, nil
}

func (r *fakePropertyRepo) GetByIDForUpdate(ctx context.Context, id uint) (*models.Property, error) {
	return r.GetByID(ctx, id)
}

func (r *fakePropertyRepo) Save(_ context.Context, property *models.Property) error {
	if _, ok := r.properties[property.ID]; !ok {
		return models.ErrPropertyNotFound
	}
	stored := *property
	r.properties[stored.ID] = &stored
	return nil
}

func (r *fakePropertyRepo) ListByOwner(_ context.Context, ownerID uint) ([]models.Property, error) {
	out := []models.Property{}
	for _, p := range r.properties {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) ListAvailable(_ context.Context) ([]models.Property, error) {
	out := []models.Property{}
	for _, p := range r.properties {
		if p.Available {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[stored.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
