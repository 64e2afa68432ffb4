package repositories

import (
	"context"
	"errors"
	"fmt"

	"stayhub-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id uint) (*models.Property, error)
	// GetByIDForUpdate locks the property row for the rest of the enclosing
	// transaction. Booking creation takes this lock so two concurrent
	// requests for the same property cannot both pass the availability check.
	GetByIDForUpdate(ctx context.Context, id uint) (*models.Property, error)
	Save(ctx context.Context, property *models.Property) error
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Property, error)
	ListAvailable(ctx context.Context) ([]models.Property, error)
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	if err := conn(ctx, r.db).Create(property).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	err := conn(ctx, r.db).First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to load property %d: %w", id, err)
	}
	return &property, nil
}

func (r *propertyRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to lock property %d: %w", id, err)
	}
	return &property, nil
}

func (r *propertyRepository) Save(ctx context.Context, property *models.Property) error {
	if err := conn(ctx, r.db).Save(property).Error; err != nil {
		return fmt.Errorf("failed to save property %d: %w", property.ID, err)
	}
	return nil
}

func (r *propertyRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Property, error) {
	var properties []models.Property
	err := conn(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list owner properties: %w", err)
	}
	if properties == nil {
		properties = []models.Property{}
	}
	return properties, nil
}

func (r *propertyRepository) ListAvailable(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	err := conn(ctx, r.db).
		Where("available = ?", true).
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available properties: %w", err)
	}
	if properties == nil {
		properties = []models.Property{}
	}
	return properties, nil
}
