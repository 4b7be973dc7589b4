package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getsentry/sentry-go"
	zlog "github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"wardrobeapi/models"
)

const (
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultImageModel = "gemini-2.5-flash-image-preview"
)

type GeminiConfig struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
}

func GeminiConfigFromEnv() GeminiConfig {
	return GeminiConfig{
		APIKey:     GetEnv("GOOGLE_API_KEY", ""),
		BaseURL:    GetEnv("GENAI_BASE_URL", ""),
		TextModel:  GetEnv("GENAI_TEXT_MODEL", DefaultTextModel),
		ImageModel: GetEnv("GENAI_IMAGE_MODEL", DefaultImageModel),
	}
}

// GeminiStylist implements ItemAnalyzer, OutfitRecommender and ImageComposer
// on top of the Gemini API.
type GeminiStylist struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

func NewGeminiStylist(ctx context.Context, cfg GeminiConfig) (*GeminiStylist, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	if cfg.TextModel == "" {
		cfg.TextModel = DefaultTextModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	return &GeminiStylist{client: client, textModel: cfg.TextModel, imageModel: cfg.ImageModel}, nil
}

// TokenUsage is the usage metadata reported for one generate call.
type TokenUsage struct {
	InputTokenCount    int32
	OutputTokenCount   int32
	ThoughtsTokenCount int32
	TotalTokenCount    int32
}

func usageOf(result *genai.GenerateContentResponse) TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return TokenUsage{}
	}
	return TokenUsage{
		InputTokenCount:    result.UsageMetadata.PromptTokenCount,
		OutputTokenCount:   result.UsageMetadata.CandidatesTokenCount,
		ThoughtsTokenCount: result.UsageMetadata.ThoughtsTokenCount,
		TotalTokenCount:    result.UsageMetadata.TotalTokenCount,
	}
}

func logUsage(operation, model string, result *genai.GenerateContentResponse) {
	usage := usageOf(result)
	zlog.Info().
		Str("operation", operation).
		Str("model", model).
		Int32("input", usage.InputTokenCount).
		Int32("output", usage.OutputTokenCount).
		Int32("thoughts", usage.ThoughtsTokenCount).
		Int32("total", usage.TotalTokenCount).
		Msg("[Stylist] token usage")
}

// BlockReason reports why the provider refused the request, if it did.
func BlockReason(result *genai.GenerateContentResponse) (string, bool) {
	if result == nil {
		return "", false
	}
	if fb := result.PromptFeedback; fb != nil && fb.BlockReason != "" && fb.BlockReason != genai.BlockedReasonUnspecified {
		return string(fb.BlockReason), true
	}
	for _, cand := range result.Candidates {
		if cand == nil {
			continue
		}
		for _, rating := range cand.SafetyRatings {
			if rating != nil && rating.Blocked {
				return string(rating.Category), true
			}
		}
	}
	return "", false
}

func blockedError(reason string) *models.AppError {
	return models.NewAppError(
		models.ErrGenerationBlocked,
		fmt.Sprintf("Image generation was blocked. Reason: %s. Please try a different photo or outfit description.", reason),
		nil,
	)
}

// ResponseText joins the non-thought text parts of the first candidate.
func ResponseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0] == nil || result.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}

// FirstImage returns the first inline image, scanning candidates in order.
// Blocks are reported before a missing image.
func FirstImage(result *genai.GenerateContentResponse) (*models.InlineImage, error) {
	if reason, blocked := BlockReason(result); blocked {
		return nil, blockedError(reason)
	}
	if result != nil {
		for _, cand := range result.Candidates {
			if cand == nil || cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
					continue
				}
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = "image/png"
				}
				return &models.InlineImage{MIMEType: mimeType, Data: part.InlineData.Data}, nil
			}
		}
	}
	return nil, models.NewAppError(
		models.ErrGeneration,
		"Could not generate an image from the response. The model did not return valid content.",
		nil,
	)
}

// ParseAnalysis decodes analyzer output and checks it against the enumerations.
func ParseAnalysis(text string) (*models.AnalyzedClothingItem, error) {
	var item models.AnalyzedClothingItem
	if err := json.Unmarshal([]byte(text), &item); err != nil {
		return nil, models.NewAppError(models.ErrAnalysis, "The analysis result could not be read. Please try another photo.", err)
	}
	if err := analysisValidator.Struct(item); err != nil {
		return nil, models.NewAppError(models.ErrAnalysis, "The analysis result is incomplete. Please try another photo.", err)
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	return &item, nil
}

// ParseRecommendation decodes recommender output. An empty selection counts
// as a malformed answer.
func ParseRecommendation(text string) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return nil, models.NewAppError(models.ErrRemoteService, "The stylist returned an unreadable answer. Please try again.", err)
	}
	if len(rec.ItemIDs) == 0 {
		return nil, models.NewAppError(models.ErrRemoteService, "The stylist did not select any items. Please try again.", nil)
	}
	return &rec, nil
}

var analysisValidator = models.NewValidator()

func (g *GeminiStylist) AnalyzeItem(ctx context.Context, image models.InlineImage) (*models.AnalyzedClothingItem, error) {
	parts := []*genai.Part{
		{InlineData: &genai.Blob{Data: image.Data, MIMEType: image.MIMEType}},
		{Text: analysisInstruction},
	}
	result, err := g.client.Models.GenerateContent(ctx, g.textModel, []*genai.Content{{Parts: parts}}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   AnalysisSchema(),
		CandidateCount:   1,
	})
	if err != nil {
		sentry.CaptureException(err)
		return nil, models.NewAppError(models.ErrAnalysis, "Failed to analyze the clothing item. Please try again.", err)
	}
	logUsage("analyze", g.textModel, result)
	if reason, blocked := BlockReason(result); blocked {
		return nil, models.NewAppError(models.ErrAnalysis, fmt.Sprintf("The photo could not be analyzed. Reason: %s.", reason), nil)
	}
	return ParseAnalysis(ResponseText(result))
}

func (g *GeminiStylist) RecommendOutfit(ctx context.Context, req models.RecommendationRequest) (*models.Recommendation, error) {
	prompt, err := RecommendationPrompt(req)
	if err != nil {
		return nil, err
	}
	result, err := g.client.Models.GenerateContent(ctx, g.textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   RecommendationSchema(),
		CandidateCount:   1,
	})
	if err != nil {
		sentry.CaptureException(err)
		return nil, models.NewAppError(models.ErrRemoteService, "Failed to get recommendation. Please try again.", err)
	}
	logUsage("recommend", g.textModel, result)
	if reason, blocked := BlockReason(result); blocked {
		return nil, models.NewAppError(models.ErrRemoteService, fmt.Sprintf("The recommendation was blocked. Reason: %s.", reason), nil)
	}
	return ParseRecommendation(ResponseText(result))
}

func (g *GeminiStylist) ComposeTryOn(ctx context.Context, photo models.InlineImage, description string) (*models.InlineImage, error) {
	parts := []*genai.Part{
		{InlineData: &genai.Blob{Data: photo.Data, MIMEType: photo.MIMEType}},
		{Text: TryOnPrompt(description)},
	}
	result, err := g.client.Models.GenerateContent(ctx, g.imageModel, []*genai.Content{{Parts: parts}}, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
	})
	if err != nil {
		sentry.CaptureException(err)
		return nil, models.NewAppError(models.ErrGeneration, "Failed to generate virtual try-on image.", err)
	}
	logUsage("tryon", g.imageModel, result)
	return FirstImage(result)
}
