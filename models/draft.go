package models

import (
	"strings"
)

var itemValidator = NewValidator()

// ItemDraft accumulates the attributes of a new item from analysis output and
// user edits. It turns into a NewClothingItem only through Build, which fails
// while any required attribute is still missing.
type ItemDraft struct {
	Name      *string       `json:"name"`
	ImageURL  *string       `json:"imageUrl"`
	Category  *Category     `json:"category"`
	Gender    *Gender       `json:"gender"`
	Colors    []ColorDetail `json:"colors"`
	Tags      []string      `json:"tags"`
	Fabric    *string       `json:"fabric"`
	Texture   *string       `json:"texture"`
	Season    *Season       `json:"season"`
	Formality *Formality    `json:"formality"`
	Fit       *Fit          `json:"fit"`
	Layering  *Layering     `json:"layering"`
}

func NewItemDraft(imageURL string) *ItemDraft {
	return &ItemDraft{ImageURL: &imageURL}
}

// Apply fills every attribute that is still unset from an analysis result.
// Values the user already edited win.
func (d *ItemDraft) Apply(a AnalyzedClothingItem) *ItemDraft {
	if d.Name == nil {
		d.Name = &a.Name
	}
	if d.Category == nil {
		d.Category = &a.Category
	}
	if d.Gender == nil {
		d.Gender = &a.Gender
	}
	if d.Colors == nil {
		d.Colors = append([]ColorDetail(nil), a.Colors...)
	}
	if d.Tags == nil {
		d.Tags = append([]string{}, a.Tags...)
	}
	if d.Fabric == nil {
		d.Fabric = &a.Fabric
	}
	if d.Texture == nil {
		d.Texture = &a.Texture
	}
	if d.Season == nil {
		d.Season = &a.Season
	}
	if d.Formality == nil {
		d.Formality = &a.Formality
	}
	if d.Fit == nil {
		d.Fit = &a.Fit
	}
	if d.Layering == nil {
		d.Layering = &a.Layering
	}
	return d
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// Missing lists the json names of required attributes that are not set yet.
func (d *ItemDraft) Missing() []string {
	missing := []string{}
	if blank(d.Name) {
		missing = append(missing, "name")
	}
	if blank(d.ImageURL) {
		missing = append(missing, "imageUrl")
	}
	if d.Category == nil || *d.Category == "" {
		missing = append(missing, "category")
	}
	if d.Gender == nil || *d.Gender == "" {
		missing = append(missing, "gender")
	}
	if len(d.Colors) == 0 {
		missing = append(missing, "colors")
	}
	// an explicit empty list is a valid answer, an absent one is not
	if d.Tags == nil {
		missing = append(missing, "tags")
	}
	if blank(d.Fabric) {
		missing = append(missing, "fabric")
	}
	if blank(d.Texture) {
		missing = append(missing, "texture")
	}
	if d.Season == nil || *d.Season == "" {
		missing = append(missing, "season")
	}
	if d.Formality == nil || *d.Formality == "" {
		missing = append(missing, "formality")
	}
	if d.Fit == nil || *d.Fit == "" {
		missing = append(missing, "fit")
	}
	if d.Layering == nil || *d.Layering == "" {
		missing = append(missing, "layering")
	}
	return missing
}

func (d *ItemDraft) Complete() bool {
	return len(d.Missing()) == 0
}

// Build finalizes the draft. Tags are trimmed and blank ones dropped.
func (d *ItemDraft) Build() (NewClothingItem, error) {
	if missing := d.Missing(); len(missing) > 0 {
		return NewClothingItem{}, ValidationError("Please fill in all required fields: %s", strings.Join(missing, ", "))
	}
	tags := []string{}
	for _, tag := range d.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	item := NewClothingItem{
		Name:      strings.TrimSpace(*d.Name),
		ImageURL:  strings.TrimSpace(*d.ImageURL),
		Category:  *d.Category,
		Gender:    *d.Gender,
		Colors:    append([]ColorDetail(nil), d.Colors...),
		Tags:      tags,
		Fabric:    strings.TrimSpace(*d.Fabric),
		Texture:   strings.TrimSpace(*d.Texture),
		Season:    *d.Season,
		Formality: *d.Formality,
		Fit:       *d.Fit,
		Layering:  *d.Layering,
	}
	if err := itemValidator.Struct(item); err != nil {
		return NewClothingItem{}, NewAppError(ErrValidation, "Some item attributes are invalid", err)
	}
	return item, nil
}

func StrPtr(s string) *string {
	return &s
}
