package models

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrConnectivity         = errors.New("no network connection")
	ErrValidation           = errors.New("validation failed")
	ErrInsufficientWardrobe = errors.New("not enough items in wardrobe")
	ErrRemoteService        = errors.New("remote service error")
	ErrResolution           = errors.New("recommended item could not be resolved")
	ErrInvalidPhoto         = errors.New("invalid photo")
	ErrNotFound             = errors.New("not found")

	// Specialisations of ErrRemoteService.
	ErrAnalysis          = fmt.Errorf("analysis failed: %w", ErrRemoteService)
	ErrGeneration        = fmt.Errorf("image generation failed: %w", ErrRemoteService)
	ErrGenerationBlocked = fmt.Errorf("image generation blocked: %w", ErrRemoteService)
)

const OfflineMessage = "You are currently offline. Please check your internet connection and try again."

// AppError carries a taxonomy kind, a message fit for the end user and the
// underlying cause. errors.Is matches both Kind and Err.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func NewAppError(kind error, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	out := []error{}
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

func ValidationError(format string, args ...any) *AppError {
	return NewAppError(ErrValidation, fmt.Sprintf(format, args...), nil)
}

func NotFoundError(what, id string) *AppError {
	return NewAppError(ErrNotFound, fmt.Sprintf("%s %q not found", what, id), nil)
}

// ResolutionError reports every id that did not map onto a wardrobe item.
func ResolutionError(missing []string) *AppError {
	return NewAppError(
		ErrResolution,
		"The suggested outfit referenced items that are no longer in your wardrobe: "+strings.Join(missing, ", "),
		nil,
	)
}

func ConnectivityError() *AppError {
	return NewAppError(ErrConnectivity, OfflineMessage, nil)
}

// HTTPStatus maps an error onto the status code the API answers with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidPhoto):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInsufficientWardrobe), errors.Is(err, ErrGenerationBlocked):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrConnectivity):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrRemoteService), errors.Is(err, ErrResolution):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns the message of the outermost AppError, or a generic one.
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return "Something went wrong, please try again"
}
