package api

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidepool-org/glucoguide/errors"
	"github.com/tidepool-org/glucoguide/users"
)

func (h *Handler) Login(ec echo.Context) error {
	request := LoginJSONRequestBody{}
	if err := ec.Bind(&request); err != nil {
		return errors.BadRequest
	}

	profile := h.users.GetUserByUsername(ec.Request().Context(), request.Username)
	if profile == nil {
		return errors.Unauthorized.WithMessage("invalid username")
	}

	return ec.JSON(http.StatusOK, NewProfileDto(*profile))
}

func (h *Handler) GetUser(ec echo.Context, username Username) error {
	profile, err := h.getProfile(ec.Request().Context(), username)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewProfileDto(*profile))
}

func (h *Handler) UpdateUser(ec echo.Context, username Username) error {
	dto := UpdateUserJSONRequestBody{}
	if err := ec.Bind(&dto); err != nil {
		return errors.BadRequest
	}

	if !h.users.UpdateUser(ec.Request().Context(), username, NewProfile(dto, username)) {
		return errors.InternalServerError
	}

	return ec.JSON(http.StatusOK, UpdateUserResponse{Updated: true})
}

// PatchUser merges the fields of the body into the stored profile
func (h *Handler) PatchUser(ec echo.Context, username Username) error {
	body, err := io.ReadAll(ec.Request().Body)
	if err != nil {
		return errors.BadRequest
	}

	profile, err := h.users.PatchUser(ec.Request().Context(), username, body)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewProfileDto(*profile))
}

func (h *Handler) ImportUsers(ec echo.Context) error {
	request := ImportUsersJSONRequestBody{}
	if err := ec.Bind(&request); err != nil {
		return errors.BadRequest
	}

	imported := h.users.ImportUsersFromCSV(ec.Request().Context(), request.Path)
	return ec.JSON(http.StatusAccepted, ImportUsersResponse{Imported: imported})
}

func (h *Handler) getProfile(ctx context.Context, username string) (*users.Profile, error) {
	profile := h.users.GetUserByUsername(ctx, username)
	if profile == nil {
		return nil, users.ErrNotFound
	}
	return profile, nil
}
