package models

import (
	"time"

	"gorm.io/datatypes"
)

// Category is simple reference data used to group celebrities and items.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;size:255" json:"name"`
	Description string `gorm:"not null;type:text" json:"description"`
	ImageURL    string `gorm:"column:image_url;not null" json:"imageUrl"`
}

// Tournament is an event a celebrity appeared at.
type Tournament struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null;size:255" json:"name"`
	Location    string  `gorm:"not null;size:255" json:"location"`
	SurfaceType string  `gorm:"not null;size:50" json:"surfaceType"`
	StartDate   string  `gorm:"not null;size:50" json:"startDate"`
	EndDate     string  `gorm:"not null;size:50" json:"endDate"`
	Description *string `gorm:"type:text" json:"description"`
	ImageURL    string  `gorm:"column:image_url;not null" json:"imageUrl"`
	Tier        string  `gorm:"not null;size:100" json:"tier"`
}

// OutfitDetails is the nested outfit block on a tournament appearance.
type OutfitDetails struct {
	MainColor         string  `json:"mainColor"`
	AccentColor       *string `json:"accentColor,omitempty"`
	SpecialFeatures   *string `json:"specialFeatures,omitempty"`
	DesignInspiration *string `json:"designInspiration,omitempty"`
}

// TournamentOutfit records what a celebrity wore at one tournament.
type TournamentOutfit struct {
	ID               uint                      `gorm:"primaryKey" json:"id"`
	CelebrityID      uint                      `gorm:"not null;index" json:"celebrityId"`
	TournamentID     uint                      `gorm:"not null;index" json:"tournamentId"`
	Year             int                       `gorm:"not null" json:"year"`
	Description      *string                   `gorm:"type:text" json:"description"`
	ImageURL         string                    `gorm:"column:image_url;not null" json:"imageUrl"`
	Result           *string                   `gorm:"size:100" json:"result"`
	OutfitDetails    OutfitDetails             `gorm:"type:jsonb;serializer:json;not null" json:"outfitDetails"`
	AssociatedBrands datatypes.JSONSlice[uint] `gorm:"not null" json:"associatedBrands"`
}

// Plan is a pricing tier.
type Plan struct {
	ID       uint                        `gorm:"primaryKey" json:"id"`
	Name     string                      `gorm:"not null;size:255" json:"name"`
	ImageURL string                      `gorm:"column:image_url;not null" json:"imageUrl"`
	Price    string                      `gorm:"not null;size:50" json:"price"`
	Discount *string                     `gorm:"size:50" json:"discount"`
	IsActive bool                        `gorm:"default:true;not null" json:"isActive"`
	Features datatypes.JSONSlice[string] `gorm:"not null" json:"features"`
}

// PlanUpdate carries a partial plan update.
type PlanUpdate struct {
	Name     *string   `json:"name"`
	ImageURL *string   `json:"imageUrl"`
	Price    *string   `json:"price"`
	Discount *string   `json:"discount"`
	IsActive *bool     `json:"isActive"`
	Features *[]string `json:"features"`
}

func (up *PlanUpdate) Apply(p *Plan) {
	if up.Name != nil {
		p.Name = *up.Name
	}
	if up.ImageURL != nil {
		p.ImageURL = *up.ImageURL
	}
	if up.Price != nil {
		p.Price = *up.Price
	}
	if up.Discount != nil {
		p.Discount = up.Discount
	}
	if up.IsActive != nil {
		p.IsActive = *up.IsActive
	}
	if up.Features != nil {
		p.Features = datatypes.NewJSONSlice(*up.Features)
	}
}

// CelebrityProduct is an item sold or promoted by a celebrity.
type CelebrityProduct struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CelebrityID  uint           `gorm:"not null;index" json:"celebrityId"`
	Name         string         `gorm:"not null;size:255" json:"name"`
	Description  *string        `gorm:"type:text" json:"description"`
	Category     string         `gorm:"not null;size:100" json:"category"`
	ImageURL     string         `gorm:"column:image_url;not null" json:"imageUrl"`
	Price        *string        `gorm:"size:50" json:"price"`
	Location     *string        `gorm:"size:255" json:"location"`
	Website      *string        `json:"website"`
	PurchaseLink *string        `json:"purchaseLink"`
	Rating       *int           `json:"rating"`
	IsActive     bool           `gorm:"default:true;not null" json:"isActive"`
	IsFeatured   bool           `gorm:"default:false;not null" json:"isFeatured"`
	Metadata     datatypes.JSON `json:"metadata"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Blog is an editorial post shown on the discovery site.
type Blog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	Content     string    `gorm:"not null;type:text" json:"content"`
	ImageURL    string    `gorm:"column:image_url" json:"imageUrl"`
	Author      string    `gorm:"size:255" json:"author"`
	IsPublished bool      `gorm:"default:false;not null" json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
