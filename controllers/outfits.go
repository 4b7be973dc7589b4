package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wardrobeapi/models"
	"wardrobeapi/services"
	"wardrobeapi/wardrobe"
)

type OutfitController struct {
	Repo     *wardrobe.Repository
	Profiles *wardrobe.ProfileStore
	Stylist  *services.Stylist
}

func (controller *OutfitController) OutfitRoutes(g *echo.Group) {
	g.POST("/recommend", controller.Recommend)
	g.POST("/tryon", controller.TryOn)
}

func (controller *OutfitController) Recommend(c echo.Context) error {
	var req models.RecommendIn
	if err := c.Bind(&req); err != nil {
		return respondError(c, models.ValidationError("Invalid request body"))
	}
	outfit, err := controller.Stylist.Recommend(
		c.Request().Context(), controller.Repo, req.Occasion, controller.Profiles.Get(), req.MustUseItemID,
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, outfit)
}

// TryOn renders the profile photo wearing the given items.
func (controller *OutfitController) TryOn(c echo.Context) error {
	var req models.TryOnIn
	if err := c.Bind(&req); err != nil {
		return respondError(c, models.ValidationError("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return respondError(c, err)
	}
	profile := controller.Profiles.Get()
	if !profile.HasPhoto() {
		return respondError(c, models.ValidationError("Upload a photo in your profile to visualize this outfit."))
	}
	items, err := controller.Repo.Select(req.ItemIDs)
	if err != nil {
		return respondError(c, err)
	}
	image, err := controller.Stylist.TryOn(c.Request().Context(), profile.PhotoURL, items)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.TryOnOut{Image: image})
}
