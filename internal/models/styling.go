package models

import "errors"

var ErrInvalidStylingDetail = errors.New("styling detail requires an occasion and an outfit designer")

// Outfit describes what a celebrity wore for one occasion.
type Outfit struct {
	Designer     string  `json:"designer"`
	Price        string  `json:"price"`
	Details      string  `json:"details"`
	PurchaseLink *string `json:"purchaseLink,omitempty"`
}

// Stylist is a hair or makeup credit attached to a styling detail.
type Stylist struct {
	Name      string  `json:"name"`
	Instagram *string `json:"instagram,omitempty"`
	Website   *string `json:"website,omitempty"`
	Details   *string `json:"details,omitempty"`
}

// StylingDetail pairs one occasion with the outfit worn at it. Decoding a
// client payload into this shape drops any keys the schema does not know.
type StylingDetail struct {
	Occasion     string   `json:"occasion"`
	Outfit       Outfit   `json:"outfit"`
	HairStylist  *Stylist `json:"hairStylist,omitempty"`
	MakeupArtist *Stylist `json:"makeupArtist,omitempty"`
	Image        *string  `json:"image,omitempty"`
}

// NormalizeStylingDetails validates a styling-details list and returns the
// canonical form. A nil input stays nil; entries missing the occasion or the
// outfit designer are rejected rather than silently kept.
func NormalizeStylingDetails(in []StylingDetail) ([]StylingDetail, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]StylingDetail, 0, len(in))
	for _, d := range in {
		if d.Occasion == "" || d.Outfit.Designer == "" {
			return nil, ErrInvalidStylingDetail
		}
		if d.HairStylist != nil && d.HairStylist.Name == "" {
			d.HairStylist = nil
		}
		if d.MakeupArtist != nil && d.MakeupArtist.Name == "" {
			d.MakeupArtist = nil
		}
		out = append(out, d)
	}
	return out, nil
}

// ManagerInfo is the booking-contact block on an elite celebrity profile.
type ManagerInfo struct {
	Name             string `json:"name"`
	Agency           string `json:"agency"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	BookingInquiries string `json:"bookingInquiries"`
}
