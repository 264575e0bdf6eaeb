package seed

import (
	"context"

	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
	"gorm.io/datatypes"
)

func seedCategories(ctx context.Context, store storage.Store) error {
	existing, err := store.GetCategories(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	rows := []models.Category{
		{
			Name:        "Red Carpet",
			Description: "Luxurious evening looks worn to premieres and awards.",
			ImageURL:    "https://cdn.styleverse.example/images/categories/red-carpet.jpg",
		},
		{
			Name:        "Street Style",
			Description: "Casual, everyday outfits seen off-duty.",
			ImageURL:    "https://cdn.styleverse.example/images/categories/street-style.jpg",
		},
		{
			Name:        "Concert",
			Description: "Performance looks and stage outfits.",
			ImageURL:    "https://cdn.styleverse.example/images/categories/concert.jpg",
		},
	}
	for _, row := range rows {
		if _, err := store.CreateCategory(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

func seedBrands(ctx context.Context, store storage.Store) error {
	existing, err := store.GetBrands(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	rows := []models.Brand{
		{
			Name:         "Ray-Ban",
			Description:  strptr("Iconic eyewear brand known for Aviator and Wayfarer."),
			ImageURL:     "https://cdn.styleverse.example/images/brands/rayban.png",
			CelebWearers: datatypes.NewJSONSlice([]string{"TS", "ES", "LM"}),
		},
		{
			Name:         "Nike",
			Description:  strptr("Global sportswear leader with performance and lifestyle lines."),
			ImageURL:     "https://cdn.styleverse.example/images/brands/nike.png",
			CelebWearers: datatypes.NewJSONSlice([]string{"LM"}),
		},
		{
			Name:         "Gucci",
			Description:  strptr("Luxury fashion house celebrated for bold designs."),
			ImageURL:     "https://cdn.styleverse.example/images/brands/gucci.png",
			CelebWearers: datatypes.NewJSONSlice([]string{"TS", "ES"}),
		},
	}
	for _, row := range rows {
		if _, err := store.CreateBrand(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

func seedCelebrities(ctx context.Context, store storage.Store) error {
	existing, err := store.GetCelebrities(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	rows := []models.Celebrity{
		{
			Name:        "Emma Stone",
			Profession:  "Actor",
			ImageURL:    "https://cdn.styleverse.example/images/emma-stone.jpg",
			Description: strptr("Academy Award-winning actress known for versatile roles."),
			Category:    "Red Carpet",
			IsActive:    true,
			IsElite:     true,
			StylingDetails: []models.StylingDetail{
				{
					Occasion: "Oscars",
					Outfit: models.Outfit{
						Designer:     "Louis Vuitton",
						Price:        "$4500",
						Details:      "Embellished corset gown",
						PurchaseLink: strptr("https://example.com/purchase/emma-oscars-gown"),
					},
					Image: strptr("https://cdn.styleverse.example/images/emma-oscars.jpg"),
				},
			},
		},
		{
			Name:        "Lionel Messi",
			Profession:  "Athlete",
			ImageURL:    "https://cdn.styleverse.example/images/lionel-messi.jpg",
			Description: strptr("Football legend with global influence."),
			Category:    "Street Style",
			IsActive:    true,
		},
		{
			Name:        "Taylor Swift",
			Profession:  "Singer",
			ImageURL:    "https://cdn.styleverse.example/images/taylor-swift.jpg",
			Description: strptr("Pop icon and record-breaking performer."),
			Category:    "Concert",
			IsActive:    true,
			IsElite:     true,
			ManagerInfo: &models.ManagerInfo{
				Name:             "Taylor Swift Management",
				Agency:           "Republic Records",
				Email:            "contact@taylorswift.example",
				Phone:            "+1 310 555 1989",
				BookingInquiries: "For business inquiries and collaborations, contact management with a detailed proposal.",
			},
			StylingDetails: []models.StylingDetail{
				{
					Occasion: "Eras Tour",
					Outfit: models.Outfit{
						Designer: "Versace",
						Price:    "$5200",
						Details:  "Sequined bodysuit with fringes",
					},
					Image: strptr("https://cdn.styleverse.example/images/taylor-eras.jpg"),
				},
			},
		},
	}
	for _, row := range rows {
		if _, err := store.CreateCelebrity(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

func seedCelebrityBrands(ctx context.Context, store storage.Store) error {
	celebs, err := store.GetCelebrities(ctx)
	if err != nil {
		return err
	}
	brands, err := store.GetBrands(ctx)
	if err != nil {
		return err
	}

	byName := func(name string) *models.Celebrity {
		for i := range celebs {
			if celebs[i].Name == name {
				return &celebs[i]
			}
		}
		return nil
	}
	brandByName := func(name string) *models.Brand {
		for i := range brands {
			if brands[i].Name == name {
				return &brands[i]
			}
		}
		return nil
	}

	taylor, gucci := byName("Taylor Swift"), brandByName("Gucci")
	if taylor == nil || gucci == nil {
		return nil
	}
	links, err := store.GetCelebrityBrands(ctx, taylor.ID)
	if err != nil {
		return err
	}
	if len(links) > 0 {
		return nil
	}

	_, err = store.CreateCelebrityBrand(ctx, models.CelebrityBrand{
		CelebrityID:   taylor.ID,
		BrandID:       gucci.ID,
		Description:   strptr("Stage and red-carpet partnership."),
		ItemType:      strptr("Outfit"),
		ImagePosition: models.ImagePosition{Top: "35%", Left: "48%"},
		EquipmentSpecs: &models.EquipmentSpecs{
			Material:    strptr("Sequined silk"),
			Color:       strptr("Midnight blue"),
			ReleaseYear: intptr(2024),
			Price:       strptr("$5200"),
			StockStatus: strptr("Limited"),
			Ratings:     &models.EquipmentRatings{Quality: intptr(5), Style: intptr(5)},
		},
		OccasionPricing: models.OccasionPricing{
			"concert": {
				Price:           "$5200",
				AvailableColors: []string{"Midnight blue", "Silver"},
				LimitedEdition:  boolptr(true),
			},
		},
		RelationshipStartYear: intptr(2019),
	})
	return err
}

func seedTournaments(ctx context.Context, store storage.Store) error {
	existing, err := store.GetTournaments(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	wimbledon, err := store.CreateTournament(ctx, models.Tournament{
		Name:        "Wimbledon",
		Location:    "London, United Kingdom",
		SurfaceType: "Grass",
		StartDate:   "2025-06-30",
		EndDate:     "2025-07-13",
		Description: strptr("The oldest tennis championship, famous for its all-white dress code."),
		ImageURL:    "https://cdn.styleverse.example/images/tournaments/wimbledon.jpg",
		Tier:        "Grand Slam",
	})
	if err != nil {
		return err
	}
	if _, err := store.CreateTournament(ctx, models.Tournament{
		Name:        "US Open",
		Location:    "New York, USA",
		SurfaceType: "Hard",
		StartDate:   "2025-08-25",
		EndDate:     "2025-09-07",
		Description: strptr("The season's final Grand Slam, known for bold night-session fashion."),
		ImageURL:    "https://cdn.styleverse.example/images/tournaments/us-open.jpg",
		Tier:        "Grand Slam",
	}); err != nil {
		return err
	}

	celebs, err := store.GetCelebrities(ctx)
	if err != nil {
		return err
	}
	brands, err := store.GetBrands(ctx)
	if err != nil {
		return err
	}
	if len(celebs) == 0 || len(brands) == 0 {
		return nil
	}

	_, err = store.CreateTournamentOutfit(ctx, models.TournamentOutfit{
		CelebrityID:  celebs[0].ID,
		TournamentID: wimbledon.ID,
		Year:         2025,
		Description:  strptr("Courtside appearance in a tailored all-white ensemble."),
		ImageURL:     "https://cdn.styleverse.example/images/outfits/wimbledon-2025.jpg",
		Result:       strptr("Spectator"),
		OutfitDetails: models.OutfitDetails{
			MainColor:       "White",
			AccentColor:     strptr("Gold"),
			SpecialFeatures: strptr("Hand-stitched monogram"),
		},
		AssociatedBrands: datatypes.NewJSONSlice([]uint{brands[0].ID}),
	})
	return err
}

func seedPlans(ctx context.Context, store storage.Store) error {
	existing, err := store.GetPlans(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	rows := []models.Plan{
		{
			Name:     "Fan",
			ImageURL: "https://cdn.styleverse.example/images/plans/fan.png",
			Price:    "$0",
			IsActive: true,
			Features: datatypes.NewJSONSlice([]string{
				"Browse celebrity looks",
				"Follow favourite brands",
			}),
		},
		{
			Name:     "Style Insider",
			ImageURL: "https://cdn.styleverse.example/images/plans/insider.png",
			Price:    "$9.99",
			Discount: strptr("20% annual"),
			IsActive: true,
			Features: datatypes.NewJSONSlice([]string{
				"Everything in Fan",
				"Early access to styling details",
				"Occasion pricing breakdowns",
			}),
		},
	}
	for _, row := range rows {
		if _, err := store.CreatePlan(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(ctx context.Context, store storage.Store) error {
	existing, err := store.GetCelebrityProducts(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	celebs, err := store.GetCelebrities(ctx)
	if err != nil {
		return err
	}
	var emma *models.Celebrity
	for i := range celebs {
		if celebs[i].Name == "Emma Stone" {
			emma = &celebs[i]
			break
		}
	}
	if emma == nil {
		return nil
	}

	_, err = store.CreateCelebrityProduct(ctx, models.CelebrityProduct{
		CelebrityID:  emma.ID,
		Name:         "Oscars Gown",
		Description:  strptr("Louis Vuitton embellished corset gown as seen at the Oscars."),
		Category:     "Fashion",
		ImageURL:     "https://cdn.styleverse.example/images/products/emma-oscars-gown.jpg",
		Price:        strptr("$4500"),
		Website:      strptr("https://example.com/emma-gown"),
		PurchaseLink: strptr("https://example.com/buy/emma-gown"),
		Rating:       intptr(5),
		IsActive:     true,
		IsFeatured:   true,
		Metadata:     []byte(`{"tags":["red-carpet","luxury"],"specialties":["Hand-crafted","Corset"]}`),
	})
	return err
}

func seedBlogs(ctx context.Context, store storage.Store) error {
	existing, err := store.GetBlogs(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	rows := []models.Blog{
		{
			Title:       "Emma Stone Owns the Red Carpet",
			Content:     "Emma Stone dazzled in Louis Vuitton, setting trends for the season.",
			ImageURL:    "https://cdn.styleverse.example/images/blogs/emma-red-carpet.jpg",
			Author:      "Style Desk",
			IsPublished: true,
		},
		{
			Title:       "Street Style Lessons from Lionel Messi",
			Content:     "How the football legend keeps casual wear effortless.",
			ImageURL:    "https://cdn.styleverse.example/images/blogs/messi-street.jpg",
			Author:      "Style Desk",
			IsPublished: true,
		},
	}
	for _, row := range rows {
		if _, err := store.CreateBlog(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

func boolptr(b bool) *bool { return &b }
