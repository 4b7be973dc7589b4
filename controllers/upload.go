package controllers

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	zlog "github.com/rs/zerolog/log"

	"wardrobeapi/models"
	"wardrobeapi/services"
)

type UploadController struct {
	Uploader services.ImageUploader
}

func (controller *UploadController) UploadRoutes(g *echo.Group) {
	g.POST("/upload", controller.Upload)
}

// Upload stores the multipart "image" file with the image host.
func (controller *UploadController) Upload(c echo.Context) error {
	header, content, ok, err := readImage(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusBadRequest, models.MessageOut{Message: "No image file provided."})
	}
	out, err := controller.Uploader.UploadImage(c.Request().Context(), header.Filename, header.Header.Get("Content-Type"), content)
	if err != nil {
		return uploadFailed(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Image uploaded successfully",
		"imageUrl": out.ImageURL,
		"publicId": out.PublicID,
	})
}

func uploadFailed(c echo.Context, err error) error {
	var unsupported *services.UnsupportedImageError
	if errors.As(err, &unsupported) {
		return c.JSON(http.StatusBadRequest, models.MessageOut{Message: "Only image files can be uploaded."})
	}
	zlog.Error().Err(err).Msg("[Upload] image upload failed")
	sentry.CaptureException(err)
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"message": "Image upload failed",
		"error":   err.Error(),
	})
}
