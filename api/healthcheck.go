package api

import (
	"net/http"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tidepool-org/glucoguide/store"
)

type HealthCheck struct {
	ready  atomic.Bool
	store  store.Store
	logger *zap.SugaredLogger
}

func NewHealthCheck(s store.Store, logger *zap.SugaredLogger) *HealthCheck {
	return &HealthCheck{
		store:  s,
		logger: logger,
	}
}

func (h *HealthCheck) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Readiness probe
func (h *HealthCheck) Ready(c echo.Context) error {
	if !h.ready.Load() {
		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.store.Ping(c.Request().Context()); err != nil {
		h.logger.Warnw("store is not reachable", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
