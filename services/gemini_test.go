package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"wardrobeapi/models"
)

func imageResponse(mimeType string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "Here you go"},
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
			}},
		}},
	}
}

func TestFirstImage(t *testing.T) {
	image, err := FirstImage(imageResponse("image/png", []byte{9}))
	require.NoError(t, err)
	assert.Equal(t, "image/png", image.MIMEType)
	assert.Equal(t, []byte{9}, image.Data)
}

func TestFirstImageScansLaterCandidates(t *testing.T) {
	resp := imageResponse("image/jpeg", []byte{7})
	resp.Candidates = append([]*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: "no image"}}}}}, resp.Candidates...)

	image, err := FirstImage(resp)
	require.NoError(t, err)
	assert.Equal(t, []byte{7}, image.Data)
}

func TestFirstImageMissing(t *testing.T) {
	_, err := FirstImage(&genai.GenerateContentResponse{})
	assert.True(t, errors.Is(err, models.ErrGeneration))
	assert.False(t, errors.Is(err, models.ErrGenerationBlocked))

	_, err = FirstImage(nil)
	assert.True(t, errors.Is(err, models.ErrGeneration))
}

func TestFirstImagePromptBlocked(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
	}
	_, err := FirstImage(resp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrGenerationBlocked))
	assert.Equal(t,
		"Image generation was blocked. Reason: SAFETY. Please try a different photo or outfit description.",
		models.UserMessage(err))
}

func TestFirstImageSafetyRatingBlocked(t *testing.T) {
	resp := imageResponse("image/png", []byte{1})
	resp.Candidates[0].SafetyRatings = []*genai.SafetyRating{{Category: genai.HarmCategoryHarassment, Blocked: true}}

	_, err := FirstImage(resp)
	assert.True(t, errors.Is(err, models.ErrGenerationBlocked))
}

func TestUnspecifiedBlockReasonIsIgnored(t *testing.T) {
	resp := imageResponse("image/png", []byte{1})
	resp.PromptFeedback = &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonUnspecified}

	_, blocked := BlockReason(resp)
	assert.False(t, blocked)
}

func TestParseAnalysis(t *testing.T) {
	raw := `{"name":"Blue Denim Shorts","category":"Bottom","gender":"Unisex",
		"colors":[{"type":"Primary","name":"Blue","hex":"#1E3A8A"}],"tags":["Denim","Frayed"],
		"fabric":"Denim","texture":"Rough","season":"Summer","formality":"Casual","fit":"Loose","layering":"Base"}`
	item, err := ParseAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryBottom, item.Category)
	assert.Equal(t, "#1E3A8A", item.Colors[0].Hex)

	_, err = ParseAnalysis(`{"name":`)
	assert.True(t, errors.Is(err, models.ErrAnalysis))

	_, err = ParseAnalysis(strings.Replace(raw, `"Bottom"`, `"Trousers"`, 1))
	assert.True(t, errors.Is(err, models.ErrAnalysis))
}

func TestParseRecommendation(t *testing.T) {
	rec, err := ParseRecommendation(`{"itemIds":["1","2"],"reasoning":"Balanced."}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, rec.ItemIDs)

	_, err = ParseRecommendation(`not json`)
	assert.True(t, errors.Is(err, models.ErrRemoteService))

	_, err = ParseRecommendation(`{"itemIds":[],"reasoning":"none"}`)
	assert.True(t, errors.Is(err, models.ErrRemoteService))
}

func TestResponseTextSkipsThoughts(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []*genai.Part{
			{Text: "thinking...", Thought: true},
			{Text: ` {"itemIds":["1"]} `},
		}},
	}}}
	assert.Equal(t, `{"itemIds":["1"]}`, ResponseText(resp))
	assert.Equal(t, "", ResponseText(nil))
}

// fakeGemini answers generateContent calls with a canned candidate text and
// records the request bodies.
func fakeGemini(t *testing.T, answer string) (*httptest.Server, *[]map[string]any) {
	var requests []map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}
		body, _ := io.ReadAll(r.Body)
		payload := map[string]any{}
		_ = json.Unmarshal(body, &payload)
		requests = append(requests, payload)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{"role": "model", "parts": []any{map[string]any{"text": answer}}},
			}},
			"usageMetadata": map[string]any{"promptTokenCount": 10, "candidatesTokenCount": 5, "totalTokenCount": 15},
		})
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func TestGeminiRecommendOverHTTP(t *testing.T) {
	server, requests := fakeGemini(t, `{"itemIds":["tee","jeans"],"reasoning":"Easy brunch look."}`)
	stylist, err := NewGeminiStylist(context.Background(), GeminiConfig{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	rec, err := stylist.RecommendOutfit(context.Background(), models.RecommendationRequest{
		Wardrobe: brunchWardrobe().ListAll(),
		Occasion: "casual brunch",
		Profile:  models.EmptyProfile(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"tee", "jeans"}, rec.ItemIDs)
	assert.Equal(t, "Easy brunch look.", rec.Reasoning)

	require.Len(t, *requests, 1)
	raw, _ := json.Marshal((*requests)[0])
	assert.Contains(t, string(raw), "casual brunch")
	assert.NotContains(t, string(raw), "https://cdn/tee.png")
}

func TestGeminiAnalyzeOverHTTPRejectsBadEnum(t *testing.T) {
	server, _ := fakeGemini(t, `{"name":"Cape","category":"Cape","gender":"Unisex","colors":[],"tags":[],
		"fabric":"Wool","texture":"Soft","season":"Winter","formality":"Formal","fit":"Loose","layering":"Outer"}`)
	stylist, err := NewGeminiStylist(context.Background(), GeminiConfig{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = stylist.AnalyzeItem(context.Background(), models.InlineImage{MIMEType: "image/png", Data: []byte{1}})
	assert.True(t, errors.Is(err, models.ErrAnalysis))
}
