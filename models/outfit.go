package models

// Recommendation is the raw answer of an outfit recommender: ids still need
// to be resolved against the wardrobe.
type Recommendation struct {
	ItemIDs   []string `json:"itemIds"`
	Reasoning string   `json:"reasoning"`
}

// Outfit is a resolved recommendation. It is never persisted.
type Outfit struct {
	Items     []ClothingItem `json:"items"`
	Reasoning string         `json:"reasoning"`
	Occasion  string         `json:"occasion"`
}

type RecommendationRequest struct {
	Wardrobe      []ClothingItem
	Occasion      string
	Profile       UserProfile
	MustUseItemID string
}

// InlineImage is raw image bytes with their MIME type.
type InlineImage struct {
	MIMEType string
	Data     []byte
}
