package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidepool-org/glucoguide/readings"
)

// GetCurrentGlucose simulates a reading within the user's target range
func (h *Handler) GetCurrentGlucose(ec echo.Context, username Username) error {
	profile, err := h.getProfile(ec.Request().Context(), username)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewReadingDto(h.simulator.Current(*profile)))
}

func (h *Handler) ListFoods(ec echo.Context) error {
	return ec.JSON(http.StatusOK, NewFoodsDto(readings.Foods()))
}

func (h *Handler) EstimateInsulin(ec echo.Context, params EstimateInsulinParams) error {
	carbs := 0.0
	if params.Carbs != nil {
		carbs = *params.Carbs
	}

	return ec.JSON(http.StatusOK, InsulinEstimate{
		Carbs: carbs,
		Units: readings.EstimateInsulin(carbs),
	})
}
