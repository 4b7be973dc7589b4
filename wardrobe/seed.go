package wardrobe

import "wardrobeapi/models"

// SeedWardrobe returns the sample wardrobe shown on first run.
func SeedWardrobe() []models.ClothingItem {
	return []models.ClothingItem{
		{
			ID:          "1",
			Name:        "Plain White T-Shirt",
			ImageURL:    "https://picsum.photos/id/10/400/600",
			Category:    models.CategoryTop,
			Gender:      models.GenderUnisex,
			Colors:      []models.ColorDetail{{Type: models.ColorPrimary, Name: "White", Hex: "#FFFFFF"}},
			Tags:        []string{"Solid", "Plain"},
			Fabric:      "Cotton",
			Texture:     "Soft",
			Season:      models.SeasonAllSeason,
			Formality:   models.FormalityCasual,
			Fit:         models.FitRegular,
			Layering:    models.LayeringBase,
			IsAvailable: true,
		},
		{
			ID:          "2",
			Name:        "Blue Slim-Fit Jeans",
			ImageURL:    "https://picsum.photos/id/20/400/600",
			Category:    models.CategoryBottom,
			Gender:      models.GenderUnisex,
			Colors:      []models.ColorDetail{{Type: models.ColorPrimary, Name: "Blue", Hex: "#0000FF"}},
			Tags:        []string{"Denim"},
			Fabric:      "Denim",
			Texture:     "Slightly Rough",
			Season:      models.SeasonAllSeason,
			Formality:   models.FormalityCasual,
			Fit:         models.FitSlim,
			Layering:    models.LayeringBase,
			IsAvailable: true,
		},
		{
			ID:          "3",
			Name:        "Black Leather Jacket",
			ImageURL:    "https://picsum.photos/id/30/400/600",
			Category:    models.CategoryOuterwear,
			Gender:      models.GenderMale,
			Colors:      []models.ColorDetail{{Type: models.ColorPrimary, Name: "Black", Hex: "#000000"}},
			Tags:        []string{"Solid", "Leather"},
			Fabric:      "Leather",
			Texture:     "Smooth",
			Season:      models.SeasonAutumn,
			Formality:   models.FormalitySmartCasual,
			Fit:         models.FitRegular,
			Layering:    models.LayeringOuter,
			IsAvailable: true,
		},
		{
			ID:          "4",
			Name:        "White Canvas Sneakers",
			ImageURL:    "https://picsum.photos/id/40/400/600",
			Category:    models.CategoryFootwear,
			Gender:      models.GenderUnisex,
			Colors:      []models.ColorDetail{{Type: models.ColorPrimary, Name: "White", Hex: "#FFFFFF"}},
			Tags:        []string{"Sneakers", "Laces"},
			Fabric:      "Canvas",
			Texture:     "Matte",
			Season:      models.SeasonAllSeason,
			Formality:   models.FormalityCasual,
			Fit:         models.FitRegular,
			Layering:    models.LayeringBase, // footwear has no layer, base keeps the record valid
			IsAvailable: true,
		},
		{
			ID:       "5",
			Name:     "Red Floral Summer Dress",
			ImageURL: "https://picsum.photos/id/50/400/600",
			Category: models.CategoryDress,
			Gender:   models.GenderFemale,
			Colors: []models.ColorDetail{
				{Type: models.ColorPrimary, Name: "Red", Hex: "#FF0000"},
				{Type: models.ColorSecondary, Name: "Green", Hex: "#00FF00"},
			},
			Tags:        []string{"Floral", "Sleeveless"},
			Fabric:      "Viscose",
			Texture:     "Lightweight",
			Season:      models.SeasonSummer,
			Formality:   models.FormalityCasual,
			Fit:         models.FitLoose,
			Layering:    models.LayeringBase,
			IsAvailable: false,
		},
		{
			ID:          "6",
			Name:        "Brown Leather Belt",
			ImageURL:    "https://picsum.photos/id/60/400/600",
			Category:    models.CategoryAccessory,
			Gender:      models.GenderUnisex,
			Colors:      []models.ColorDetail{{Type: models.ColorPrimary, Name: "Brown", Hex: "#A52A2A"}},
			Tags:        []string{"Leather", "Belt"},
			Fabric:      "Leather",
			Texture:     "Smooth",
			Season:      models.SeasonAllSeason,
			Formality:   models.FormalitySmartCasual,
			Fit:         models.FitRegular,
			Layering:    models.LayeringBase,
			IsAvailable: true,
		},
	}
}
