package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"wardrobeapi/models"
)

type ImageUploader interface {
	UploadImage(ctx context.Context, fileName, declaredType string, content []byte) (*models.UploadOut, error)
}

// ImageHost stores uploaded images in the bucket under Folder and answers
// with a URL the client can load the image from.
type ImageHost struct {
	AWSService    AWSServiceProvider
	URLCache      URLCacheServiceProvider
	BucketName    string
	Folder        string
	PublicBaseURL string
}

func NewImageHostFromEnv(awsService AWSServiceProvider, urlCache URLCacheServiceProvider) *ImageHost {
	return &ImageHost{
		AWSService:    awsService,
		URLCache:      urlCache,
		BucketName:    GetEnv("R2_BUCKET_NAME", ""),
		Folder:        GetEnv("UPLOAD_FOLDER", "smart-outfit-assistant"),
		PublicBaseURL: GetEnv("R2_PUBLIC_BASE_URL", ""),
	}
}

// UnsupportedImageError is returned for content that is not an accepted image.
type UnsupportedImageError struct {
	MIMEType string
}

func (e *UnsupportedImageError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.MIMEType)
}

// DetectImageType sniffs content, trusting the declared type only when
// sniffing cannot tell (HEIC is not recognised by the sniffer).
func DetectImageType(content []byte, declaredType string) (string, error) {
	mimeType := http.DetectContentType(content)
	if !IsAllowedImageType(mimeType) && mimeType == "application/octet-stream" && IsAllowedImageType(declaredType) {
		mimeType = declaredType
	}
	if !IsAllowedImageType(mimeType) {
		return "", &UnsupportedImageError{MIMEType: mimeType}
	}
	return mimeType, nil
}

func (h *ImageHost) objectKey(fileName, mimeType string) string {
	return strings.Trim(h.Folder, "/") + "/" + uuid.NewString() + ImageExtension(fileName, mimeType)
}

// PublicURL returns the URL under which objectKey can be read.
func (h *ImageHost) PublicURL(ctx context.Context, objectKey string) (string, error) {
	if h.PublicBaseURL != "" {
		return strings.TrimRight(h.PublicBaseURL, "/") + "/" + objectKey, nil
	}
	url, err := h.URLCache.GetReadURL(ctx, objectKey)
	if err == nil {
		return url, nil
	}
	zlog.Warn().Err(err).Str("objectKey", objectKey).Msg("[Upload] read URL cache failed, presigning directly")
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("failure_type", "cache_system")
		scope.SetExtra("objectKey", objectKey)
		sentry.CaptureException(err)
	})
	return h.AWSService.GetPresignedR2FileReadURL(ctx, h.BucketName, objectKey)
}

func (h *ImageHost) UploadImage(ctx context.Context, fileName, declaredType string, content []byte) (*models.UploadOut, error) {
	mimeType, err := DetectImageType(content, declaredType)
	if err != nil {
		return nil, err
	}
	key := h.objectKey(fileName, mimeType)
	uploadURL, err := h.AWSService.PresignLink(ctx, h.BucketName, key, mimeType)
	if err != nil {
		return nil, err
	}
	if _, err := h.AWSService.UploadToPresignedURL(ctx, uploadURL, content, mimeType); err != nil {
		return nil, err
	}
	url, err := h.PublicURL(ctx, key)
	if err != nil {
		return nil, err
	}
	zlog.Info().Str("publicId", key).Str("mime", mimeType).Int("bytes", len(content)).Msg("[Upload] image stored")
	return &models.UploadOut{ImageURL: url, PublicID: key}, nil
}
