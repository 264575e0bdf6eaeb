package seed

import (
	"context"
	"errors"
	"log/slog"

	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

// vipCelebrityID is the slot the VIP section reads from; the record there
// must be the featured artist.
const vipCelebrityID uint = 115

// seedVIPCelebrity pins the featured artist at the VIP id. An occupant of
// the slot is moved to a fresh auto id first, so no record is lost.
func seedVIPCelebrity(ctx context.Context, store storage.Store) error {
	celebs, err := store.GetCelebrities(ctx)
	if err != nil {
		return err
	}
	for _, c := range celebs {
		if c.Name == "Atif Aslam" {
			return nil
		}
	}

	if occupant, err := store.GetCelebrityByID(ctx, vipCelebrityID); err == nil {
		moved, err := store.ReassignCelebrityID(ctx, vipCelebrityID)
		if err != nil {
			return err
		}
		slog.Info("moved celebrity off the VIP slot", "name", occupant.Name, "new_id", moved.ID)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	_, err = store.CreateCelebrityWithID(ctx, models.Celebrity{
		Name:        "Atif Aslam",
		Profession:  "Singer, Songwriter, Actor",
		ImageURL:    "https://cdn.styleverse.example/images/atif-aslam.png",
		Description: strptr("Celebrated playback singer and pop icon with a massive international following."),
		Category:    "Entertainment",
		IsActive:    true,
		ManagerInfo: &models.ManagerInfo{
			Name:             "Tariq Ahmed Productions",
			Agency:           "Atif Aslam Music Management",
			Email:            "management@atifaslammusic.example",
			Phone:            "+92 21 35667897",
			BookingInquiries: "For concert bookings and music collaborations, contact Tariq Ahmed Productions.",
		},
		StylingDetails: []models.StylingDetail{
			{
				Occasion: "Concert Performances",
				Outfit: models.Outfit{
					Designer: "Contemporary Stage Wear",
					Price:    "$800-$2,500",
					Details:  "Modern fitted shirts and branded jackets suitable for live performances.",
				},
				Image: strptr("https://cdn.styleverse.example/images/atif-concerts.jpg"),
			},
			{
				Occasion: "Award Shows",
				Outfit: models.Outfit{
					Designer: "HSY, Amir Adnan",
					Price:    "$1,200-$3,500",
					Details:  "Elegant sherwanis and tailored suits for award ceremonies.",
				},
				Image: strptr("https://cdn.styleverse.example/images/atif-awards.jpg"),
			},
		},
	}, vipCelebrityID)
	return err
}

// Elite names get a premium badge on the discovery site.
var eliteCelebrityNames = []string{
	"Emma Stone",
	"Taylor Swift",
	"Atif Aslam",
	"Priyanka Chopra",
	"Kim Kardashian",
	"Ariana Grande",
}

// markEliteCelebrities flips the elite flag on known superstar profiles.
// Uses the full-replace update, so every field is carried over.
func markEliteCelebrities(ctx context.Context, store storage.Store) error {
	elite := make(map[string]bool, len(eliteCelebrityNames))
	for _, name := range eliteCelebrityNames {
		elite[name] = true
	}

	celebs, err := store.GetCelebrities(ctx)
	if err != nil {
		return err
	}
	for _, c := range celebs {
		if !elite[c.Name] || c.IsElite {
			continue
		}
		c.IsElite = true
		if _, err := store.UpdateCelebrity(ctx, c.ID, c); err != nil {
			return err
		}
		slog.Info("marked elite celebrity", "name", c.Name)
	}
	return nil
}
