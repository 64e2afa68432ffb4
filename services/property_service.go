package services

import (
	"context"
	"strings"

	"stayhub-backend/models"
	"stayhub-backend/repositories"
)

// PropertyService owns the listing catalog. Bookings only read properties;
// catalog writes stay here.
type PropertyService struct {
	properties repositories.PropertyRepository
}

func NewPropertyService(properties repositories.PropertyRepository) *PropertyService {
	return &PropertyService{properties: properties}
}

type PropertyInput struct {
	Title         string
	Description   string
	Location      string
	PricePerNight float64
	MaxGuests     int
	Available     *bool
	Amenities     []string
	Images        []string
}

func (in PropertyInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return models.NewValidationError("title is required")
	}
	if in.PricePerNight < 0 {
		return models.NewValidationError("price per night cannot be negative")
	}
	if in.MaxGuests <= 0 {
		return models.NewValidationError("max guests must be positive")
	}
	return nil
}

func (s *PropertyService) CreateProperty(ctx context.Context, ownerID uint, in PropertyInput) (*models.Property, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	property := &models.Property{
		OwnerID:       ownerID,
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		Location:      in.Location,
		PricePerNight: in.PricePerNight,
		MaxGuests:     in.MaxGuests,
		Available:     true,
	}
	if in.Available != nil {
		property.Available = *in.Available
	}
	property.SetAmenities(in.Amenities)
	property.SetImages(in.Images)
	if err := s.properties.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// UpdateProperty applies in to an existing listing. Only the owning user may
// update it.
func (s *PropertyService) UpdateProperty(ctx context.Context, ownerID, propertyID uint, in PropertyInput) (*models.Property, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.OwnerID != ownerID {
		return nil, models.ErrNotAllowed
	}
	property.Title = strings.TrimSpace(in.Title)
	property.Description = in.Description
	property.Location = in.Location
	property.PricePerNight = in.PricePerNight
	property.MaxGuests = in.MaxGuests
	if in.Available != nil {
		property.Available = *in.Available
	}
	property.SetAmenities(in.Amenities)
	property.SetImages(in.Images)
	if err := s.properties.Save(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) GetProperty(ctx context.Context, propertyID uint) (*models.Property, error) {
	return s.properties.GetByID(ctx, propertyID)
}

func (s *PropertyService) ListOwnerProperties(ctx context.Context, ownerID uint) ([]models.Property, error) {
	return s.properties.ListByOwner(ctx, ownerID)
}

func (s *PropertyService) ListAvailableProperties(ctx context.Context) ([]models.Property, error) {
	return s.properties.ListAvailable(ctx)
}
