package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"wardrobeapi/dbhelper"
	"wardrobeapi/services"
	"wardrobeapi/test"
	"wardrobeapi/wardrobe"
)

type testServer struct {
	e           *echo.Echo
	repo        *wardrobe.Repository
	profiles    *wardrobe.ProfileStore
	aws         *test.AWSProviderMock
	analyzer    *test.AnalyzerMock
	recommender *test.RecommenderMock
	composer    *test.ComposerMock
	stylist     *services.Stylist
}

func setupTestServer(t *testing.T) *testServer {
	t.Setenv("API_JWT_SECRET", "")
	db := dbhelper.SetupTestDB()
	t.Cleanup(dbhelper.SetupCleaner(db))

	repo, profiles, err := wardrobe.Open(wardrobe.NewAdapter(dbhelper.NewGormKV(db), true))
	require.NoError(t, err)

	ts := &testServer{
		repo:        repo,
		profiles:    profiles,
		aws:         &test.AWSProviderMock{},
		analyzer:    &test.AnalyzerMock{},
		recommender: &test.RecommenderMock{},
		composer:    &test.ComposerMock{},
	}
	ts.stylist = &services.Stylist{
		Analyzer:     ts.analyzer,
		Recommender:  ts.recommender,
		Composer:     ts.composer,
		Connectivity: test.Connectivity(true),
	}
	host := &services.ImageHost{
		AWSService:    ts.aws,
		URLCache:      test.URLCacheMock{},
		BucketName:    "bucket",
		Folder:        "smart-outfit-assistant",
		PublicBaseURL: "https://img.example.com",
	}
	ts.e = SetupServer(repo, profiles, ts.stylist, host)
	return ts
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
