package models

type ColorDetail struct {
	Type ColorRole `json:"type" validate:"required,colorrole"`
	Name string    `json:"name" validate:"required"`
	Hex  string    `json:"hex" validate:"required,hexcolor"`
}

// ClothingItem is a catalogued wardrobe entry. ID and IsAvailable are owned by
// the wardrobe repository, everything else comes from analysis or user edits.
type ClothingItem struct {
	ID          string        `json:"id" validate:"required"`
	Name        string        `json:"name" validate:"required,max=100"`
	ImageURL    string        `json:"imageUrl" validate:"required"`
	Category    Category      `json:"category" validate:"category"`
	Gender      Gender        `json:"gender" validate:"gender"`
	Colors      []ColorDetail `json:"colors" validate:"min=1,dive"`
	Tags        []string      `json:"tags"`
	Fabric      string        `json:"fabric" validate:"required"`
	Texture     string        `json:"texture" validate:"required"`
	Season      Season        `json:"season" validate:"season"`
	Formality   Formality     `json:"formality" validate:"formality"`
	Fit         Fit           `json:"fit" validate:"fit"`
	Layering    Layering      `json:"layering" validate:"layering"`
	IsAvailable bool          `json:"isAvailable"`
}

// AnalyzedClothingItem is the pre-confirmation shape returned by item analysis.
type AnalyzedClothingItem struct {
	Name      string        `json:"name" validate:"required"`
	Category  Category      `json:"category" validate:"required,category"`
	Gender    Gender        `json:"gender" validate:"required,gender"`
	Colors    []ColorDetail `json:"colors" validate:"required,min=1,dive"`
	Tags      []string      `json:"tags" validate:"required"`
	Fabric    string        `json:"fabric" validate:"required"`
	Texture   string        `json:"texture" validate:"required"`
	Season    Season        `json:"season" validate:"required,season"`
	Formality Formality     `json:"formality" validate:"required,formality"`
	Fit       Fit           `json:"fit" validate:"required,fit"`
	Layering  Layering      `json:"layering" validate:"required,layering"`
}

// NewClothingItem carries every ClothingItem field except the ones the
// repository assigns. Only ItemDraft.Build produces one from partial input.
type NewClothingItem struct {
	Name      string        `validate:"required,max=100"`
	ImageURL  string        `validate:"required"`
	Category  Category      `validate:"category"`
	Gender    Gender        `validate:"gender"`
	Colors    []ColorDetail `validate:"min=1,dive"`
	Tags      []string      `validate:"-"`
	Fabric    string        `validate:"required"`
	Texture   string        `validate:"required"`
	Season    Season        `validate:"season"`
	Formality Formality     `validate:"formality"`
	Fit       Fit           `validate:"fit"`
	Layering  Layering      `validate:"layering"`
}

// StylingAttributes is the item view sent to the recommender: no image reference.
type StylingAttributes struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Category  Category      `json:"category"`
	Gender    Gender        `json:"gender"`
	Colors    []ColorDetail `json:"colors"`
	Tags      []string      `json:"tags"`
	Fabric    string        `json:"fabric"`
	Texture   string        `json:"texture"`
	Season    Season        `json:"season"`
	Formality Formality     `json:"formality"`
	Fit       Fit           `json:"fit"`
	Layering  Layering      `json:"layering"`
}

// PrimaryColor returns the first color tagged Primary, falling back to the
// first listed color.
func (item ClothingItem) PrimaryColor() (ColorDetail, bool) {
	for _, c := range item.Colors {
		if c.Type == ColorPrimary {
			return c, true
		}
	}
	if len(item.Colors) > 0 {
		return item.Colors[0], true
	}
	return ColorDetail{}, false
}

func (item ClothingItem) StylingAttributes() StylingAttributes {
	return StylingAttributes{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		Gender:    item.Gender,
		Colors:    item.Colors,
		Tags:      item.Tags,
		Fabric:    item.Fabric,
		Texture:   item.Texture,
		Season:    item.Season,
		Formality: item.Formality,
		Fit:       item.Fit,
		Layering:  item.Layering,
	}
}

// Clone returns a copy that shares no slices with the receiver.
func (item ClothingItem) Clone() ClothingItem {
	out := item
	if item.Colors != nil {
		out.Colors = append([]ColorDetail(nil), item.Colors...)
	}
	if item.Tags != nil {
		out.Tags = append([]string(nil), item.Tags...)
	}
	return out
}

func (n NewClothingItem) WithIdentity(id string) ClothingItem {
	return ClothingItem{
		ID:          id,
		Name:        n.Name,
		ImageURL:    n.ImageURL,
		Category:    n.Category,
		Gender:      n.Gender,
		Colors:      append([]ColorDetail(nil), n.Colors...),
		Tags:        append([]string{}, n.Tags...),
		Fabric:      n.Fabric,
		Texture:     n.Texture,
		Season:      n.Season,
		Formality:   n.Formality,
		Fit:         n.Fit,
		Layering:    n.Layering,
		IsAvailable: true,
	}
}
