package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidepool-org/glucoguide/summary"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetHistory returns the stored observations as is, measurements keep the
// representation they were stored with.
func (h *Handler) GetHistory(ec echo.Context, username Username) error {
	ctx := ec.Request().Context()
	profile, err := h.getProfile(ctx, username)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, h.users.GetHistory(ctx, profile.Username))
}

// GetAverages returns all granularities, or the buckets of the selected one.
// Buckets are encoded by the summary types to keep them in first seen order.
func (h *Handler) GetAverages(ec echo.Context, username Username, params GetAveragesParams) error {
	ctx := ec.Request().Context()
	profile, err := h.getProfile(ctx, username)
	if err != nil {
		return err
	}

	averages := h.users.GetAverages(ctx, profile.Username)
	if params.Granularity != nil {
		if buckets, ok := averages.ByGranularity(string(*params.Granularity)); ok {
			return ec.JSON(http.StatusOK, buckets)
		}
	}

	return ec.JSON(http.StatusOK, averages)
}

func (h *Handler) GetAveragesReport(ec echo.Context, username Username) error {
	ctx := ec.Request().Context()
	profile, err := h.getProfile(ctx, username)
	if err != nil {
		return err
	}

	averages := h.users.GetAverages(ctx, profile.Username)
	report := summary.NewReport(profile.Username, profile, averages)

	res := ec.Response()
	res.Header().Set(echo.HeaderContentType, xlsxContentType)
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s-averages.xlsx"`, profile.Username))
	res.WriteHeader(http.StatusOK)
	return report.Write(res)
}
