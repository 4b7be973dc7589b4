package models

import "strings"

// UserProfile is the single per-user style profile. PhotoURL holds a data URI
// (or is empty when no reference photo was uploaded).
type UserProfile struct {
	Height           string            `json:"height" validate:"max=16"`
	Weight           string            `json:"weight" validate:"max=16"`
	StylePreferences []StylePreference `json:"stylePreferences" validate:"dive,stylepref"`
	FavoriteColors   []string          `json:"favoriteColors" validate:"dive,max=50"`
	PhotoURL         string            `json:"photoUrl"`
}

func EmptyProfile() UserProfile {
	return UserProfile{
		StylePreferences: []StylePreference{},
		FavoriteColors:   []string{},
	}
}

// Normalize trims free-text fields, drops blank colors and repeated or
// unknown style preferences. Order of first occurrence is kept.
func (p UserProfile) Normalize() UserProfile {
	out := UserProfile{
		Height:           strings.TrimSpace(p.Height),
		Weight:           strings.TrimSpace(p.Weight),
		StylePreferences: []StylePreference{},
		FavoriteColors:   []string{},
		PhotoURL:         strings.TrimSpace(p.PhotoURL),
	}
	seen := map[StylePreference]bool{}
	for _, pref := range p.StylePreferences {
		if seen[pref] || !ValidStylePreference(string(pref)) {
			continue
		}
		seen[pref] = true
		out.StylePreferences = append(out.StylePreferences, pref)
	}
	for _, color := range p.FavoriteColors {
		color = strings.TrimSpace(color)
		if color != "" {
			out.FavoriteColors = append(out.FavoriteColors, color)
		}
	}
	return out
}

func (p UserProfile) HasPhoto() bool {
	return p.PhotoURL != ""
}
