package controllers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	zlog "github.com/rs/zerolog/log"

	"wardrobeapi/models"
)

const maxImageBytes = 10 << 20

// defaultBodyLimit fits a maximal profile photo once base64 encoded inside a
// JSON profile, plus room for the other fields.
const defaultBodyLimit = maxImageBytes*4/3 + 1<<20

// respondError answers with the status of the error kind and a {message} body.
// Failures outside the taxonomy are reported to Sentry.
func respondError(c echo.Context, err error) error {
	status := models.HTTPStatus(err)
	if status >= http.StatusInternalServerError && !errors.Is(err, models.ErrConnectivity) {
		sentry.CaptureException(err)
	}
	zlog.Warn().Err(err).Int("status", status).Str("path", c.Path()).Msg("[API] request failed")
	return c.JSON(status, models.MessageOut{Message: models.UserMessage(err)})
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		c.JSON(httpErr.Code, models.MessageOut{Message: message})
		return
	}
	respondError(c, err)
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "Invalid request body"
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return "Invalid fields: " + strings.Join(fields, ", ")
}

// readImage loads the multipart file under field. ok is false when no file
// was sent.
func readImage(c echo.Context, field string) (header *multipart.FileHeader, content []byte, ok bool, err error) {
	header, err = c.FormFile(field)
	if err != nil {
		return nil, nil, false, nil
	}
	if header.Size > maxImageBytes {
		return nil, nil, true, models.ValidationError("The image is too large, the limit is %d MB.", maxImageBytes>>20)
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, true, err
	}
	defer file.Close()
	content, err = io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return nil, nil, true, err
	}
	if len(content) == 0 {
		return nil, nil, false, nil
	}
	return header, content, true, nil
}
