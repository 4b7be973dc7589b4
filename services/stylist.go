package services

import (
	"context"
	"errors"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"wardrobeapi/models"
)

type ItemAnalyzer interface {
	AnalyzeItem(ctx context.Context, image models.InlineImage) (*models.AnalyzedClothingItem, error)
}

type OutfitRecommender interface {
	RecommendOutfit(ctx context.Context, req models.RecommendationRequest) (*models.Recommendation, error)
}

type ImageComposer interface {
	ComposeTryOn(ctx context.Context, photo models.InlineImage, description string) (*models.InlineImage, error)
}

// Wardrobe is the part of the wardrobe repository the stylist reads.
type Wardrobe interface {
	ListAvailable() []models.ClothingItem
	Resolve(ids []string) ([]models.ClothingItem, error)
}

// Stylist enforces the pre and postconditions around the pluggable
// analyzer, recommender and composer backends.
type Stylist struct {
	Analyzer     ItemAnalyzer
	Recommender  OutfitRecommender
	Composer     ImageComposer
	Connectivity ConnectivityChecker
}

func (s *Stylist) ensureOnline(ctx context.Context) error {
	if s.Connectivity != nil && !s.Connectivity.Online(ctx) {
		zlog.Warn().Msg("[Stylist] connectivity probe failed")
		return models.ConnectivityError()
	}
	return nil
}

// wrapRemote keeps classified errors and files everything else under kind.
func wrapRemote(err error, kind error, message string) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return models.NewAppError(kind, message, err)
}

func (s *Stylist) Analyze(ctx context.Context, image []byte, mimeType string) (*models.AnalyzedClothingItem, error) {
	if len(image) == 0 {
		return nil, models.ValidationError("No image file provided.")
	}
	if err := s.ensureOnline(ctx); err != nil {
		return nil, err
	}
	item, err := s.Analyzer.AnalyzeItem(ctx, models.InlineImage{MIMEType: mimeType, Data: image})
	if err != nil {
		zlog.Error().Err(err).Msg("[Stylist] analysis failed")
		return nil, wrapRemote(err, models.ErrAnalysis, "Failed to analyze the clothing item. Please try again.")
	}
	if item == nil {
		return nil, models.NewAppError(models.ErrAnalysis, "Failed to analyze the clothing item. Please try again.", nil)
	}
	if err := analysisValidator.Struct(item); err != nil {
		return nil, models.NewAppError(models.ErrAnalysis, "The analysis result is incomplete. Please try another photo.", err)
	}
	return item, nil
}

// Recommend picks an outfit for occasion from the available items and
// resolves it against the whole wardrobe. Either every recommended id
// resolves or the call fails.
func (s *Stylist) Recommend(ctx context.Context, wardrobe Wardrobe, occasion string, profile models.UserProfile, mustUseItemID string) (*models.Outfit, error) {
	occasion = strings.TrimSpace(occasion)
	mustUseItemID = strings.TrimSpace(mustUseItemID)
	if occasion == "" {
		return nil, models.ValidationError("Please enter an occasion.")
	}
	available := wardrobe.ListAvailable()
	if mustUseItemID != "" {
		found := false
		for _, item := range available {
			if item.ID == mustUseItemID {
				found = true
				break
			}
		}
		if !found {
			return nil, models.ValidationError("The must-use item %q is not an available item in your wardrobe.", mustUseItemID)
		}
	} else if len(available) < 2 {
		return nil, models.NewAppError(models.ErrInsufficientWardrobe, "Not enough available items in the wardrobe to create an outfit.", nil)
	}
	if err := s.ensureOnline(ctx); err != nil {
		return nil, err
	}

	rec, err := s.Recommender.RecommendOutfit(ctx, models.RecommendationRequest{
		Wardrobe:      available,
		Occasion:      occasion,
		Profile:       profile,
		MustUseItemID: mustUseItemID,
	})
	if err != nil {
		zlog.Error().Err(err).Str("occasion", occasion).Msg("[Stylist] recommendation failed")
		return nil, wrapRemote(err, models.ErrRemoteService, "Failed to get recommendation. Please try again.")
	}
	if rec == nil || len(rec.ItemIDs) == 0 {
		return nil, models.NewAppError(models.ErrRemoteService, "The stylist did not select any items. Please try again.", nil)
	}
	items, err := wardrobe.Resolve(rec.ItemIDs)
	if err != nil {
		zlog.Warn().Err(err).Strs("itemIds", rec.ItemIDs).Msg("[Stylist] recommendation did not resolve")
		return nil, err
	}
	zlog.Info().Str("occasion", occasion).Strs("itemIds", rec.ItemIDs).Msg("[Stylist] outfit recommended")
	return &models.Outfit{Items: items, Reasoning: rec.Reasoning, Occasion: occasion}, nil
}

// TryOn dresses the person of photoURL (a data URI) in items and returns the
// composite as a data URI.
func (s *Stylist) TryOn(ctx context.Context, photoURL string, items []models.ClothingItem) (string, error) {
	photo, err := SplitDataURI(photoURL)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", models.ValidationError("Select at least one item to visualize.")
	}
	if err := s.ensureOnline(ctx); err != nil {
		return "", err
	}
	description := OutfitDescription(items)
	image, err := s.Composer.ComposeTryOn(ctx, photo, description)
	if err != nil {
		zlog.Error().Err(err).Msg("[Stylist] try-on failed")
		return "", wrapRemote(err, models.ErrGeneration, "Failed to generate virtual try-on image.")
	}
	if image == nil || len(image.Data) == 0 {
		return "", models.NewAppError(models.ErrGeneration, "Could not generate an image from the response.", nil)
	}
	zlog.Info().Int("items", len(items)).Int("bytes", len(image.Data)).Msg("[Stylist] try-on composed")
	return EncodeDataURI(*image), nil
}
