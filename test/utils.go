package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"wardrobeapi/models"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func GenerateUserToken(subject string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	t, err := token.SignedString([]byte(os.Getenv("API_JWT_SECRET")))
	if err != nil {
		log.Fatalf("Error when signing user token for %s. Error %s ", subject, err)
	}
	return t
}

func NewJSONAuthRequest(method string, target string, subject string, param interface{}) *http.Request {
	req := NewJSONRequest(method, target, param)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", GenerateUserToken(subject)))
	return req
}

// NewMultipartRequest builds a request carrying one file under field.
func NewMultipartRequest(method, target, field, fileName string, content []byte) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, fileName)
	if err != nil {
		log.Fatal(err)
	}
	part.Write(content)
	writer.Close()

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// PNGBytes is the signature of a PNG file, enough for content sniffing.
var PNGBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func AnalyzedShirt() models.AnalyzedClothingItem {
	return models.AnalyzedClothingItem{
		Name:      "Graphic Print T-Shirt",
		Category:  models.CategoryTop,
		Gender:    models.GenderUnisex,
		Colors:    []models.ColorDetail{{Type: models.ColorPrimary, Name: "Black", Hex: "#000000"}},
		Tags:      []string{"Graphic", "Logo"},
		Fabric:    "Cotton",
		Texture:   "Soft",
		Season:    models.SeasonSummer,
		Formality: models.FormalityCasual,
		Fit:       models.FitRegular,
		Layering:  models.LayeringBase,
	}
}

type AWSProviderMock struct {
	MockUrl   string
	UploadErr error

	mu       sync.Mutex
	Uploaded map[string][]byte
	Presigns int
}

func (awsService *AWSProviderMock) InitPresignClient(ctx context.Context) error {
	return nil
}

func (awsService *AWSProviderMock) PresignLink(ctx context.Context, bucketName, fileName, contentType string) (string, error) {
	return fmt.Sprintf("https://fakebucketurl.com/%s", fileName), nil
}

func (awsService *AWSProviderMock) GetPresignedR2FileReadURL(ctx context.Context, bucketName, fileKey string) (string, error) {
	awsService.mu.Lock()
	defer awsService.mu.Unlock()
	awsService.Presigns++
	if awsService.MockUrl != "" {
		return awsService.MockUrl, nil
	}
	return fmt.Sprintf("https://fakebucketurl.com/%s?signed=1", fileKey), nil
}

func (awsService *AWSProviderMock) UploadToPresignedURL(ctx context.Context, url string, fileContent []byte, contentType string) (int, error) {
	if awsService.UploadErr != nil {
		return http.StatusBadGateway, awsService.UploadErr
	}
	awsService.mu.Lock()
	defer awsService.mu.Unlock()
	if awsService.Uploaded == nil {
		awsService.Uploaded = map[string][]byte{}
	}
	awsService.Uploaded[url] = fileContent
	return http.StatusOK, nil
}

// URLCacheMock presigns nothing; it echoes a deterministic URL.
type URLCacheMock struct {
	Err error
}

func (m URLCacheMock) GetReadURL(ctx context.Context, objectKey string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return "https://cache.example.com/" + objectKey, nil
}

type Connectivity bool

func (c Connectivity) Online(ctx context.Context) bool {
	return bool(c)
}

// AnalyzerMock returns Result (or Err) and counts calls.
type AnalyzerMock struct {
	Result *models.AnalyzedClothingItem
	Err    error
	Calls  int
}

func (m *AnalyzerMock) AnalyzeItem(ctx context.Context, image models.InlineImage) (*models.AnalyzedClothingItem, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

// RecommenderMock returns Result (or Err) and records the last request.
type RecommenderMock struct {
	Result  *models.Recommendation
	Err     error
	Calls   int
	Request models.RecommendationRequest
}

func (m *RecommenderMock) RecommendOutfit(ctx context.Context, req models.RecommendationRequest) (*models.Recommendation, error) {
	m.Calls++
	m.Request = req
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

// ComposerMock returns Result (or Err) and records its inputs.
type ComposerMock struct {
	Result      *models.InlineImage
	Err         error
	Calls       int
	Photo       models.InlineImage
	Description string
}

func (m *ComposerMock) ComposeTryOn(ctx context.Context, photo models.InlineImage, description string) (*models.InlineImage, error) {
	m.Calls++
	m.Photo = photo
	m.Description = description
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}
