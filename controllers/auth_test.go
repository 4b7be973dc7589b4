package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"wardrobeapi/dbhelper"
	"wardrobeapi/services"
	"wardrobeapi/test"
	"wardrobeapi/wardrobe"
)

func TestTokenRequiredWhenSecretSet(t *testing.T) {
	t.Setenv("API_JWT_SECRET", "wardrobe-test-secret")
	db := dbhelper.SetupTestDB()
	defer dbhelper.SetupCleaner(db)()
	repo, profiles, err := wardrobe.Open(wardrobe.NewAdapter(dbhelper.NewGormKV(db), true))
	assert.NoError(t, err)
	e := SetupServer(repo, profiles, &services.Stylist{}, &services.ImageHost{AWSService: &test.AWSProviderMock{}, URLCache: test.URLCacheMock{}})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONRequest("GET", "/api/wardrobe", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONAuthRequest("GET", "/api/wardrobe", "device-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONAuthRequest("GET", "/api/wardrobe", "", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
