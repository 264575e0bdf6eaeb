package models

import (
	"encoding/json"
	"testing"
)

func TestNormalizeStylingDetailsNilStaysNil(t *testing.T) {
	out, err := NormalizeStylingDetails(nil)
	if err != nil {
		t.Fatalf("NormalizeStylingDetails(nil): %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil, got %v", out)
	}
}

func TestNormalizeStylingDetailsRejectsIncomplete(t *testing.T) {
	cases := []StylingDetail{
		{Outfit: Outfit{Designer: "Versace"}},
		{Occasion: "Oscars"},
	}
	for _, d := range cases {
		if _, err := NormalizeStylingDetails([]StylingDetail{d}); err != ErrInvalidStylingDetail {
			t.Errorf("detail %+v: got err %v, want ErrInvalidStylingDetail", d, err)
		}
	}
}

func TestNormalizeStylingDetailsDropsEmptyStylists(t *testing.T) {
	in := []StylingDetail{{
		Occasion:     "Met Gala",
		Outfit:       Outfit{Designer: "Dior", Price: "$3000"},
		HairStylist:  &Stylist{},
		MakeupArtist: &Stylist{Name: "Pat McGrath"},
	}}
	out, err := NormalizeStylingDetails(in)
	if err != nil {
		t.Fatalf("NormalizeStylingDetails: %v", err)
	}
	if out[0].HairStylist != nil {
		t.Error("nameless hair stylist should be dropped")
	}
	if out[0].MakeupArtist == nil || out[0].MakeupArtist.Name != "Pat McGrath" {
		t.Error("named makeup artist should survive")
	}
}

func TestCelebrityInputDefaultsActive(t *testing.T) {
	in := CelebrityInput{Name: "Zendaya", Profession: "Actor", Category: "Red Carpet"}
	celeb, err := in.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !celeb.IsActive {
		t.Error("IsActive should default to true when omitted")
	}

	off := false
	in.IsActive = &off
	celeb, err = in.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if celeb.IsActive {
		t.Error("explicit isActive=false must be honored")
	}
}

func TestCelebrityBrandInputRequiresImagePosition(t *testing.T) {
	in := CelebrityBrandInput{CelebrityID: 1, BrandID: 2}
	if _, err := in.Normalize(); err != ErrInvalidImagePosition {
		t.Fatalf("got err %v, want ErrInvalidImagePosition", err)
	}
}

func TestCelebrityBrandInputPrunesEmptyOccasionPrices(t *testing.T) {
	in := CelebrityBrandInput{
		CelebrityID:   1,
		BrandID:       2,
		ImagePosition: ImagePosition{Top: "10%", Left: "20%"},
		OccasionPricing: OccasionPricing{
			"concert": {Price: "$1200"},
			"casual":  {Discount: strPtr("10%")},
		},
	}
	row, err := in.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if _, ok := row.OccasionPricing["casual"]; ok {
		t.Error("occasion with no price should be pruned")
	}
	if _, ok := row.OccasionPricing["concert"]; !ok {
		t.Error("priced occasion should survive")
	}
}

func TestStylingDetailDropsUnknownKeys(t *testing.T) {
	payload := []byte(`{
		"occasion": "Oscars",
		"outfit": {"designer": "Louis Vuitton", "price": "$4500"},
		"legacyField": "should vanish",
		"rating": 9
	}`)
	var d StylingDetail
	if err := json.Unmarshal(payload, &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	round, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var keys map[string]any
	if err := json.Unmarshal(round, &keys); err != nil {
		t.Fatalf("unmarshal round-trip: %v", err)
	}
	if _, ok := keys["legacyField"]; ok {
		t.Error("unknown key survived the schema round-trip")
	}
	if keys["occasion"] != "Oscars" {
		t.Errorf("occasion lost: %v", keys["occasion"])
	}
}

func strPtr(s string) *string { return &s }
