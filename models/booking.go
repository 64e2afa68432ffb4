package models

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusAccepted  BookingStatus = "ACCEPTED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusRejected,
		BookingStatusCancelled, BookingStatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status permits no further transitions.
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusRejected || bs == BookingStatusCancelled || bs == BookingStatusCompleted
}

// IsActive reports whether the booking blocks its dates on the property.
func (bs BookingStatus) IsActive() bool {
	return bs == BookingStatusPending || bs == BookingStatusAccepted
}

// ActiveBookingStatuses lists the statuses that participate in availability checks.
func ActiveBookingStatuses() []BookingStatus {
	return []BookingStatus{BookingStatusPending, BookingStatusAccepted}
}

type ActorRole string

const (
	RoleTraveler ActorRole = "traveler"
	RoleOwner    ActorRole = "owner"
	// RoleSystem is reserved for internal callers (the completion sweeper);
	// it is never encoded into an auth token.
	RoleSystem ActorRole = "system"
)

func (r ActorRole) IsValid() bool {
	return r == RoleTraveler || r == RoleOwner || r == RoleSystem
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PropertyID uint `gorm:"not null;index:idx_bookings_property_active,priority:1" json:"property_id"`
	TravelerID uint `gorm:"not null;index" json:"traveler_id"`
	// OwnerID is snapshotted from the property at creation time so a later
	// ownership change does not rewrite booking history.
	OwnerID uint `gorm:"not null;index" json:"owner_id"`

	CheckIn  time.Time `gorm:"not null;index:idx_bookings_property_active,priority:3" json:"check_in"`
	CheckOut time.Time `gorm:"not null;index:idx_bookings_property_active,priority:4" json:"check_out"`

	NumberOfGuests int     `gorm:"not null" json:"number_of_guests"`
	TotalPrice     float64 `gorm:"type:decimal(10,2);not null" json:"total_price"`

	Status BookingStatus `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_bookings_property_active,priority:2" json:"status"`

	CancelledBy        *uint      `gorm:"column:cancelled_by" json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at" json:"cancelled_at,omitempty"`
	CancellationReason *string    `gorm:"column:cancellation_reason;size:500" json:"cancellation_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Property Property `gorm:"foreignKey:PropertyID;references:ID" json:"property,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// OwnerStats is the per-owner projection served by the stats endpoint.
// CancelledCount covers both CANCELLED and REJECTED bookings; TotalRevenue
// covers ACCEPTED and COMPLETED so completing a stay never shrinks revenue.
type OwnerStats struct {
	PendingCount   int64   `json:"pending_count"`
	ConfirmedCount int64   `json:"confirmed_count"`
	CancelledCount int64   `json:"cancelled_count"`
	CompletedCount int64   `json:"completed_count"`
	TotalBookings  int64   `json:"total_bookings"`
	TotalRevenue   float64 `json:"total_revenue"`
	PendingRevenue float64 `json:"pending_revenue"`
}
