package handler

import (
	"log/slog"
	"net/http"

	"usersvc/internal/delivery/api/middleware"
	"usersvc/internal/delivery/api/response"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/service"
	"usersvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC  usecase.ProfileUsecase
	ImageStore service.ImageStore
	Logger     *slog.Logger
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	images    service.ImageStore
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		images:    params.ImageStore,
		logger:    params.Logger,
	}
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthorized)
	}

	profile, err := h.profileUC.GetOwnProfile(c.Request().Context(), identity.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile applies a partial update to the caller's account and profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthorized)
	}

	var input usecase.UpdateProfileInput
	if err := bindRequest(c, &input); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	imageRef, err := storeProfileImage(c, h.images)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	input.ImageReference = imageRef

	profile, err := h.profileUC.UpdateOwnProfile(c.Request().Context(), identity.ID, &input)
	if err != nil {
		discardImage(c, h.images, imageRef, h.logger)

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
