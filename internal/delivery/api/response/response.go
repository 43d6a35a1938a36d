package response

import (
	"net/http"

	deliverycontext "vidtube/internal/delivery/context"
	domainerrors "vidtube/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Success bool      `json:"success"`
	Code    int       `json:"code"`
	Message string    `json:"message"`
	Data    any       `json:"data"`
	Meta    *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	domainerrors.Response
	Meta *MetaInfo `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, SuccessResponse{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
		Meta:    meta(c),
	})
}

// AppError renders an AppError. Details are dropped for authentication and authorization
// failures so they never leak why a credential was rejected beyond the error code.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	body := domainerrors.ToResponse(appErr)
	if body.Code == http.StatusUnauthorized || body.Code == http.StatusForbidden {
		body.Error.Details = ""
	}

	return c.JSON(body.Code, ErrorResponse{Response: body, Meta: meta(c)})
}

// Error returns an error response for a code outside the domain catalogue
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Response: domainerrors.Response{
			Success: false,
			Code:    statusCode,
			Message: message,
			Error:   &domainerrors.ErrorInfo{Code: errorCode},
		},
		Meta: meta(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return AppError(c, domainerrors.ErrInternalError)
}
