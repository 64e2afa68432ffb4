package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Property struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID       uint    `gorm:"not null;index" json:"owner_id"`
	Title         string  `gorm:"size:255;not null" json:"title"`
	Description   string  `gorm:"type:text" json:"description"`
	Location      string  `gorm:"size:255" json:"location"`
	PricePerNight float64 `gorm:"type:decimal(10,2)" json:"price_per_night"`
	MaxGuests     int     `gorm:"not null" json:"max_guests"`
	Available     bool    `gorm:"not null;default:true" json:"available"`

	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	Images    datatypes.JSON `gorm:"column:images" json:"images,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Property) TableName() string {
	return "properties"
}

// AmenityList decodes the amenities column once at the model boundary.
// Malformed or empty JSON yields an empty list, never an error.
func (p *Property) AmenityList() []string {
	return decodeStringList(p.Amenities)
}

// ImageList decodes the images column with the same fallback as AmenityList.
func (p *Property) ImageList() []string {
	return decodeStringList(p.Images)
}

// SetAmenities stores a typed list back into the JSON column.
func (p *Property) SetAmenities(items []string) {
	p.Amenities = encodeStringList(items)
}

func (p *Property) SetImages(items []string) {
	p.Images = encodeStringList(items)
}

func decodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}

func encodeStringList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}
