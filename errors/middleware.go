package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NewHTTPErrorHandler maps HttpError values to their status codes and logs
// anything that ends up as a server error.
func NewHTTPErrorHandler(logger *zap.SugaredLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		e := HttpError{}
		if errors.As(err, &e) {
			if e.Code >= http.StatusInternalServerError {
				logger.Errorw("request failed", "path", c.Path(), zap.Error(err))
			}
			c.Echo().DefaultHTTPErrorHandler(echo.NewHTTPError(e.Code, err.Error()), c)
			return
		}
		c.Echo().DefaultHTTPErrorHandler(err, c)
	}
}
