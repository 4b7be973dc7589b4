package models

type MessageOut struct {
	Message string `json:"message"`
}

type UploadOut struct {
	ImageURL string `json:"imageUrl"`
	PublicID string `json:"publicId"`
}

type AnalyzeOut struct {
	ImageURL string               `json:"imageUrl"`
	PublicID string               `json:"publicId"`
	Analysis AnalyzedClothingItem `json:"analysis"`
}

type RecommendIn struct {
	Occasion      string `json:"occasion"`
	MustUseItemID string `json:"mustUseItemId"`
}

type TryOnIn struct {
	ItemIDs []string `json:"itemIds" validate:"required,min=1,max=12"`
}

type TryOnOut struct {
	Image string `json:"image"`
}
