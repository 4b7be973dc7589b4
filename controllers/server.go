package controllers

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/go-playground/validator"
	echojwt "github.com/labstack/echo-jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"wardrobeapi/models"
	"wardrobeapi/services"
	"wardrobeapi/wardrobe"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return models.NewAppError(models.ErrValidation, validationMessage(err), err)
	}
	return nil
}

func SetupServer(
	repo *wardrobe.Repository,
	profiles *wardrobe.ProfileStore,
	stylist *services.Stylist,
	uploader services.ImageUploader,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: models.NewValidator()}
	e.HTTPErrorHandler = errorHandler

	origins := strings.Split(services.GetEnv("CORS_ORIGINS", "*"), ",")
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.BodyLimit(services.GetEnv("BODY_LIMIT", fmt.Sprintf("%dK", defaultBodyLimit>>10))))

	api := e.Group("/api")
	if secret := os.Getenv("API_JWT_SECRET"); secret != "" {
		api.Use(echojwt.JWT([]byte(secret)), SubjectMiddleware)
	}
	// Must follow api.Use, which claims "/api" for the group.
	e.GET("/api", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "Welcome to the Smart Outfit Assistant API!",
			"status":  "Server is running",
		})
	})

	uploadController := UploadController{Uploader: uploader}
	uploadController.UploadRoutes(api)

	wardrobeController := WardrobeController{Repo: repo, Stylist: stylist, Uploader: uploader}
	wardrobeController.WardrobeRoutes(api.Group("/wardrobe"))

	profileController := ProfileController{Profiles: profiles}
	profileController.ProfileRoutes(api.Group("/profile"))

	outfitController := OutfitController{Repo: repo, Profiles: profiles, Stylist: stylist}
	outfitController.OutfitRoutes(api.Group("/outfits"))

	return e
}
