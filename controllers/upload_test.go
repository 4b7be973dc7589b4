package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobeapi/test"
)

func TestUploadImage(t *testing.T) {
	ts := setupTestServer(t)

	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, test.NewMultipartRequest("POST", "/api/upload", "image", "shirt.png", test.PNGBytes))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]string](t, rec)
	assert.Equal(t, "Image uploaded successfully", body["message"])
	assert.True(t, strings.HasPrefix(body["publicId"], "smart-outfit-assistant/"))
	assert.True(t, strings.HasSuffix(body["publicId"], ".png"))
	assert.Equal(t, "https://img.example.com/"+body["publicId"], body["imageUrl"])
	assert.Len(t, ts.aws.Uploaded, 1)
}

func TestUploadImageFailures(t *testing.T) {
	ts := setupTestServer(t)

	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, test.NewJSONRequest("POST", "/api/upload", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message": "No image file provided."}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ts.e.ServeHTTP(rec, test.NewMultipartRequest("POST", "/api/upload", "image", "notes.txt", []byte("plain text here")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message": "Only image files can be uploaded."}`, rec.Body.String())

	ts.aws.UploadErr = errors.New("bucket unreachable")
	rec = httptest.NewRecorder()
	ts.e.ServeHTTP(rec, test.NewMultipartRequest("POST", "/api/upload", "image", "shirt.png", test.PNGBytes))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[map[string]string](t, rec)
	assert.Equal(t, "Image upload failed", body["message"])
	assert.Equal(t, "bucket unreachable", body["error"])
}
