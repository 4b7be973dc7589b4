package services

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"wardrobeapi/models"
)

var dataURIMimeRule = regexp.MustCompile(`:(.*?);`)

const defaultPhotoMIME = "image/jpeg"

func invalidPhoto(err error) *models.AppError {
	return models.NewAppError(models.ErrInvalidPhoto, "Invalid user photo data URL.", err)
}

// SplitDataURI splits "data:<mime>;base64,<payload>" into bytes and MIME type.
// A header without a MIME type falls back to image/jpeg.
func SplitDataURI(uri string) (models.InlineImage, error) {
	header, payload, found := strings.Cut(uri, ",")
	if !found || header == "" || payload == "" {
		return models.InlineImage{}, invalidPhoto(nil)
	}
	if !strings.HasPrefix(header, "data:") {
		return models.InlineImage{}, invalidPhoto(fmt.Errorf("unexpected header %q", header))
	}
	mimeType := defaultPhotoMIME
	if m := dataURIMimeRule.FindStringSubmatch(header); len(m) == 2 && m[1] != "" {
		mimeType = m[1]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return models.InlineImage{}, invalidPhoto(err)
	}
	return models.InlineImage{MIMEType: mimeType, Data: data}, nil
}

func EncodeDataURI(image models.InlineImage) string {
	return "data:" + image.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(image.Data)
}
