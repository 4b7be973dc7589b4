package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wardrobeapi/models"
	"wardrobeapi/services"
	"wardrobeapi/wardrobe"
)

type ProfileController struct {
	Profiles *wardrobe.ProfileStore
}

func (controller *ProfileController) ProfileRoutes(g *echo.Group) {
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, controller.Profiles.Get())
	})

	// Replaces the whole profile, photo included.
	g.PUT("", func(c echo.Context) error {
		var profile models.UserProfile
		if err := c.Bind(&profile); err != nil {
			return respondError(c, models.ValidationError("Invalid request body"))
		}
		if err := c.Validate(profile); err != nil {
			return respondError(c, err)
		}
		if profile.PhotoURL != "" {
			if _, err := services.SplitDataURI(profile.PhotoURL); err != nil {
				return respondError(c, err)
			}
		}
		saved, err := controller.Profiles.Save(profile)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, saved)
	})

	g.POST("/photo", func(c echo.Context) error {
		header, content, ok, err := readImage(c, "photo")
		if err != nil {
			return respondError(c, err)
		}
		if !ok {
			return c.JSON(http.StatusBadRequest, models.MessageOut{Message: "No image file provided."})
		}
		mimeType, err := services.DetectImageType(content, header.Header.Get("Content-Type"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.MessageOut{Message: "Only image files can be used as a profile photo."})
		}
		saved, err := controller.Profiles.SetPhoto(services.EncodeDataURI(models.InlineImage{MIMEType: mimeType, Data: content}))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, saved)
	})
}
