package models

// Celebrity is a public fashion profile. StylingDetails and ManagerInfo are
// stored as jsonb in the relational backend.
type Celebrity struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"not null;size:255" json:"name"`
	Profession     string          `gorm:"not null;size:255" json:"profession"`
	ImageURL       string          `gorm:"column:image_url;not null" json:"imageUrl"`
	Description    *string         `gorm:"type:text" json:"description"`
	Category       string          `gorm:"not null;size:100" json:"category"`
	UserID         *uint           `gorm:"index" json:"userId"`
	IsActive       bool            `gorm:"default:true;not null" json:"isActive"`
	IsElite        bool            `gorm:"default:false;not null" json:"isElite"`
	ManagerInfo    *ManagerInfo    `gorm:"type:jsonb;serializer:json" json:"managerInfo"`
	StylingDetails []StylingDetail `gorm:"type:jsonb;serializer:json" json:"stylingDetails"`
}

// CelebrityInput is the payload accepted by create/update. Unknown JSON keys
// are dropped during decoding; Normalize rejects malformed nested records.
type CelebrityInput struct {
	Name           string          `json:"name"`
	Profession     string          `json:"profession"`
	ImageURL       string          `json:"imageUrl"`
	Description    *string         `json:"description"`
	Category       string          `json:"category"`
	UserID         *uint           `json:"userId"`
	IsActive       *bool           `json:"isActive"`
	IsElite        bool            `json:"isElite"`
	ManagerInfo    *ManagerInfo    `json:"managerInfo"`
	StylingDetails []StylingDetail `json:"stylingDetails"`
}

// Normalize returns the canonical celebrity record for the input, with id
// left unset. Missing optional fields take their declared defaults.
func (in *CelebrityInput) Normalize() (Celebrity, error) {
	details, err := NormalizeStylingDetails(in.StylingDetails)
	if err != nil {
		return Celebrity{}, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return Celebrity{
		Name:           in.Name,
		Profession:     in.Profession,
		ImageURL:       in.ImageURL,
		Description:    in.Description,
		Category:       in.Category,
		UserID:         in.UserID,
		IsActive:       active,
		IsElite:        in.IsElite,
		ManagerInfo:    in.ManagerInfo,
		StylingDetails: details,
	}, nil
}
