package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wardrobeapi/models"
	"wardrobeapi/services"
	"wardrobeapi/wardrobe"
)

type WardrobeController struct {
	Repo     *wardrobe.Repository
	Stylist  *services.Stylist
	Uploader services.ImageUploader
}

func (controller *WardrobeController) WardrobeRoutes(g *echo.Group) {
	g.GET("", controller.ListItems)
	g.POST("", controller.CreateItem)
	g.POST("/analyze", controller.AnalyzeItem)
	g.GET("/:id", controller.GetItem)
	g.PUT("/:id", controller.UpdateItem)
	g.POST("/:id/toggle", controller.ToggleItem)
}

func (controller *WardrobeController) ListItems(c echo.Context) error {
	var availableOnly bool
	if err := echo.QueryParamsBinder(c).Bool("available", &availableOnly).BindError(); err != nil {
		return respondError(c, models.ValidationError("available must be true or false"))
	}
	if availableOnly {
		return c.JSON(http.StatusOK, controller.Repo.ListAvailable())
	}
	return c.JSON(http.StatusOK, controller.Repo.ListAll())
}

func (controller *WardrobeController) GetItem(c echo.Context) error {
	item, err := controller.Repo.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// CreateItem commits a reviewed draft. Every attribute must be present.
func (controller *WardrobeController) CreateItem(c echo.Context) error {
	var draft models.ItemDraft
	if err := c.Bind(&draft); err != nil {
		return respondError(c, models.ValidationError("Invalid request body"))
	}
	newItem, err := draft.Build()
	if err != nil {
		return respondError(c, err)
	}
	item, err := controller.Repo.Add(newItem)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (controller *WardrobeController) UpdateItem(c echo.Context) error {
	var item models.ClothingItem
	if err := c.Bind(&item); err != nil {
		return respondError(c, models.ValidationError("Invalid request body"))
	}
	id := c.Param("id")
	if item.ID == "" {
		item.ID = id
	}
	if item.ID != id {
		return respondError(c, models.ValidationError("Item id in body does not match the path"))
	}
	if err := c.Validate(item); err != nil {
		return respondError(c, err)
	}
	if err := controller.Repo.UpdateByID(item); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (controller *WardrobeController) ToggleItem(c echo.Context) error {
	item, err := controller.Repo.ToggleAvailability(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// AnalyzeItem uploads the multipart "image" and runs item analysis on it.
// Nothing is added to the wardrobe until the result is posted back.
func (controller *WardrobeController) AnalyzeItem(c echo.Context) error {
	header, content, ok, err := readImage(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusBadRequest, models.MessageOut{Message: "Please select an image file first."})
	}
	ctx := c.Request().Context()
	uploaded, err := controller.Uploader.UploadImage(ctx, header.Filename, header.Header.Get("Content-Type"), content)
	if err != nil {
		return uploadFailed(c, err)
	}
	mimeType, _ := services.DetectImageType(content, header.Header.Get("Content-Type"))
	analysis, err := controller.Stylist.Analyze(ctx, content, mimeType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.AnalyzeOut{
		ImageURL: uploaded.ImageURL,
		PublicID: uploaded.PublicID,
		Analysis: *analysis,
	})
}
