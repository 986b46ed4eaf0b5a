package handler

import (
	"log/slog"
	"net/http"

	"usersvc/internal/delivery/api/middleware"
	"usersvc/internal/delivery/api/response"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/service"
	"usersvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AccountUC  usecase.AccountUsecase
	ImageStore service.ImageStore
	Logger     *slog.Logger
}

// AuthHandler serves registration, login and the self-service account update.
type AuthHandler struct {
	accountUC usecase.AccountUsecase
	images    service.ImageStore
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		accountUC: params.AccountUC,
		images:    params.ImageStore,
		logger:    params.Logger,
	}
}

// Register handles account registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := bindRequest(c, &input); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.Register(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, account)
}

// Login handles credential login and returns the access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindRequest(c, &input); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.Login(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// UpdateAccount handles PUT /api/auth/:id. Only the caller's own id is accepted,
// and that is decided before the body or any upload is looked at.
func (h *AuthHandler) UpdateAccount(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthorized)
	}

	targetID := c.Param("id")
	ctx := c.Request().Context()

	var input usecase.UpdateProfileInput
	if !isOwnAccount(identity, targetID) {
		_, err := h.accountUC.UpdateAccount(ctx, identity, targetID, &input)
		if err == nil {
			err = domainerrors.ErrForbidden
		}

		return response.HandleAppError(c, err)
	}

	if err := bindRequest(c, &input); err != nil {
		return response.BindingError(c, "Invalid account update input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	imageRef, err := storeProfileImage(c, h.images)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	input.ImageReference = imageRef

	profile, err := h.accountUC.UpdateAccount(ctx, identity, targetID, &input)
	if err != nil {
		discardImage(c, h.images, imageRef, h.logger)

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

func isOwnAccount(identity entity.Identity, targetID string) bool {
	id, err := uuid.Parse(targetID)

	return err == nil && id == identity.ID
}
