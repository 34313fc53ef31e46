package utils

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/logger"
)

// AppErrorResponse renders a usecase error. Typed errors keep their status
// and message; anything else becomes a generic 500 with the cause logged.
func AppErrorResponse(c echo.Context, err error) error {
	appErr := apperror.From(err)
	status := appErr.StatusCode()

	if appErr.Kind == apperror.KindOperationFailed {
		logger.Error("Operation failed",
			logger.String("method", c.Request().Method),
			logger.String("path", c.Path()),
			logger.ErrorField(err))
		return ErrorResponseHandler(c, status, apperror.OperationFailedMessage)
	}

	return c.JSON(status, ErrorResponse{
		Success:   false,
		Error:     appErr.Message,
		Code:      status,
		ErrorCode: appErr.Code,
	})
}
