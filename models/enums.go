package models

import (
	"slices"

	"github.com/go-playground/validator"
)

type Category string

const (
	CategoryTop       Category = "Top"
	CategoryBottom    Category = "Bottom"
	CategoryOuterwear Category = "Outerwear"
	CategoryFootwear  Category = "Footwear"
	CategoryAccessory Category = "Accessory"
	CategoryDress     Category = "Dress"
)

var Categories = []string{
	string(CategoryTop), string(CategoryBottom), string(CategoryOuterwear),
	string(CategoryFootwear), string(CategoryAccessory), string(CategoryDress),
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderUnisex Gender = "Unisex"
)

var Genders = []string{string(GenderMale), string(GenderFemale), string(GenderUnisex)}

type Season string

const (
	SeasonSpring    Season = "Spring"
	SeasonSummer    Season = "Summer"
	SeasonAutumn    Season = "Autumn"
	SeasonWinter    Season = "Winter"
	SeasonAllSeason Season = "All-Season"
)

var Seasons = []string{
	string(SeasonSpring), string(SeasonSummer), string(SeasonAutumn),
	string(SeasonWinter), string(SeasonAllSeason),
}

type Formality string

const (
	FormalityCasual         Formality = "Casual"
	FormalitySmartCasual    Formality = "Smart Casual"
	FormalityBusinessCasual Formality = "Business Casual"
	FormalityFormal         Formality = "Formal"
	FormalitySport          Formality = "Sport"
)

var Formalities = []string{
	string(FormalityCasual), string(FormalitySmartCasual), string(FormalityBusinessCasual),
	string(FormalityFormal), string(FormalitySport),
}

type Fit string

const (
	FitSkinny    Fit = "Skinny"
	FitSlim      Fit = "Slim"
	FitRegular   Fit = "Regular"
	FitLoose     Fit = "Loose"
	FitOversized Fit = "Oversized"
)

var Fits = []string{
	string(FitSkinny), string(FitSlim), string(FitRegular), string(FitLoose), string(FitOversized),
}

type Layering string

const (
	LayeringBase  Layering = "Base"
	LayeringMid   Layering = "Mid"
	LayeringOuter Layering = "Outer"
)

var Layerings = []string{string(LayeringBase), string(LayeringMid), string(LayeringOuter)}

type ColorRole string

const (
	ColorPrimary   ColorRole = "Primary"
	ColorSecondary ColorRole = "Secondary"
	ColorAccent    ColorRole = "Accent"
)

var ColorRoles = []string{string(ColorPrimary), string(ColorSecondary), string(ColorAccent)}

type StylePreference string

const (
	StyleClassic    StylePreference = "Classic"
	StyleModern     StylePreference = "Modern"
	StyleSporty     StylePreference = "Sporty"
	StyleCasual     StylePreference = "Casual"
	StyleMinimalist StylePreference = "Minimalist"
	StyleVintage    StylePreference = "Vintage"
	StyleBohemian   StylePreference = "Bohemian"
)

var StylePreferences = []string{
	string(StyleClassic), string(StyleModern), string(StyleSporty), string(StyleCasual),
	string(StyleMinimalist), string(StyleVintage), string(StyleBohemian),
}

func oneOf(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(values, fl.Field().String())
	}
}

// RegisterValidations installs the enumeration tags used across request and
// analysis structs.
func RegisterValidations(v *validator.Validate) error {
	tags := map[string][]string{
		"category":  Categories,
		"gender":    Genders,
		"season":    Seasons,
		"formality": Formalities,
		"fit":       Fits,
		"layering":  Layerings,
		"colorrole": ColorRoles,
		"stylepref": StylePreferences,
	}
	for tag, values := range tags {
		if err := v.RegisterValidation(tag, oneOf(values)); err != nil {
			return err
		}
	}
	return nil
}

// NewValidator returns a validator with every enumeration tag registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

func ValidStylePreference(value string) bool {
	return slices.Contains(StylePreferences, value)
}
