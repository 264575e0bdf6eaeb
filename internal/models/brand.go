package models

import (
	"errors"

	"gorm.io/datatypes"
)

var ErrInvalidImagePosition = errors.New("image position requires top and left offsets")

// Brand is a fashion label. CelebWearers is a denormalized list of celebrity
// initials, not a foreign key.
type Brand struct {
	ID           uint                         `gorm:"primaryKey" json:"id"`
	Name         string                       `gorm:"not null;size:255" json:"name"`
	Description  *string                      `gorm:"type:text" json:"description"`
	ImageURL     string                       `gorm:"column:image_url;not null" json:"imageUrl"`
	CelebWearers datatypes.JSONSlice[string]  `gorm:"not null" json:"celebWearers"`
}

// ImagePosition is the hotspot overlay anchor, as CSS offsets.
type ImagePosition struct {
	Top  string `json:"top"`
	Left string `json:"left"`
}

// EquipmentRatings holds optional 1-5 scores on an endorsed item.
type EquipmentRatings struct {
	Quality *int `json:"quality,omitempty"`
	Comfort *int `json:"comfort,omitempty"`
	Style   *int `json:"style,omitempty"`
	Value   *int `json:"value,omitempty"`
}

// EquipmentSpecs is the free-form technical block on a celebrity-brand
// association. Every field is optional; unknown payload keys are dropped.
type EquipmentSpecs struct {
	Weight        *string           `json:"weight,omitempty"`
	Material      *string           `json:"material,omitempty"`
	StringTension *string           `json:"stringTension,omitempty"`
	Size          *string           `json:"size,omitempty"`
	Color         *string           `json:"color,omitempty"`
	ReleaseYear   *int              `json:"releaseYear,omitempty"`
	Price         *string           `json:"price,omitempty"`
	PurchaseLink  *string           `json:"purchaseLink,omitempty"`
	StockStatus   *string           `json:"stockStatus,omitempty"`
	SerialNumber  *string           `json:"serialNumber,omitempty"`
	Ratings       *EquipmentRatings `json:"ratings,omitempty"`
}

// OccasionPrice is the per-occasion pricing entry.
type OccasionPrice struct {
	Price           string   `json:"price"`
	Discount        *string  `json:"discount,omitempty"`
	AvailableColors []string `json:"availableColors,omitempty"`
	CustomOptions   []string `json:"customOptions,omitempty"`
	LimitedEdition  *bool    `json:"limitedEdition,omitempty"`
}

// OccasionPricing maps an occasion/category name to its pricing.
type OccasionPricing map[string]OccasionPrice

// CelebrityBrand links one celebrity to one brand with item-level detail.
type CelebrityBrand struct {
	ID                    uint                        `gorm:"primaryKey" json:"id"`
	CelebrityID           uint                        `gorm:"not null;index" json:"celebrityId"`
	BrandID               uint                        `gorm:"not null;index" json:"brandId"`
	Description           *string                     `gorm:"type:text" json:"description"`
	ItemType              *string                     `gorm:"size:100" json:"itemType"`
	CategoryID            *uint                       `json:"categoryId"`
	ImagePosition         ImagePosition               `gorm:"type:jsonb;serializer:json;not null" json:"imagePosition"`
	EquipmentSpecs        *EquipmentSpecs             `gorm:"type:jsonb;serializer:json" json:"equipmentSpecs"`
	OccasionPricing       OccasionPricing             `gorm:"type:jsonb;serializer:json" json:"occasionPricing"`
	RelationshipStartYear *int                        `json:"relationshipStartYear"`
	GrandSlamAppearances  datatypes.JSONSlice[string] `json:"grandSlamAppearances"`
}

// CelebrityBrandInput is the create payload for an association record.
type CelebrityBrandInput struct {
	CelebrityID           uint            `json:"celebrityId"`
	BrandID               uint            `json:"brandId"`
	Description           *string         `json:"description"`
	ItemType              *string         `json:"itemType"`
	CategoryID            *uint           `json:"categoryId"`
	ImagePosition         ImagePosition   `json:"imagePosition"`
	EquipmentSpecs        *EquipmentSpecs `json:"equipmentSpecs"`
	OccasionPricing       OccasionPricing `json:"occasionPricing"`
	RelationshipStartYear *int            `json:"relationshipStartYear"`
	GrandSlamAppearances  []string        `json:"grandSlamAppearances"`
}

// Normalize validates the association input and returns the canonical row.
func (in *CelebrityBrandInput) Normalize() (CelebrityBrand, error) {
	if in.ImagePosition.Top == "" || in.ImagePosition.Left == "" {
		return CelebrityBrand{}, ErrInvalidImagePosition
	}
	for occasion, p := range in.OccasionPricing {
		if p.Price == "" {
			delete(in.OccasionPricing, occasion)
		}
	}
	return CelebrityBrand{
		CelebrityID:           in.CelebrityID,
		BrandID:               in.BrandID,
		Description:           in.Description,
		ItemType:              in.ItemType,
		CategoryID:            in.CategoryID,
		ImagePosition:         in.ImagePosition,
		EquipmentSpecs:        in.EquipmentSpecs,
		OccasionPricing:       in.OccasionPricing,
		RelationshipStartYear: in.RelationshipStartYear,
		GrandSlamAppearances:  datatypes.NewJSONSlice(in.GrandSlamAppearances),
	}, nil
}
