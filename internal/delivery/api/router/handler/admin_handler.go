package handler

import (
	"log/slog"
	"net/http"

	"usersvc/internal/delivery/api/response"
	"usersvc/internal/domain/service"
	"usersvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC    usecase.AdminUsecase
	ImageStore service.ImageStore
	Logger     *slog.Logger
}

// AdminHandler serves account management for administrators.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	images  service.ImageStore
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		images:  params.ImageStore,
		logger:  params.Logger,
	}
}

// CreateUser creates an account with an optional profile image.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var input usecase.AdminCreateUserInput
	if err := bindRequest(c, &input); err != nil {
		return response.BindingError(c, "Invalid user input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	imageRef, err := storeProfileImage(c, h.images)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.adminUC.CreateUser(c.Request().Context(), &input, imageRef)
	if err != nil {
		discardImage(c, h.images, imageRef, h.logger)

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, account)
}

// ListUsers returns one page of accounts filtered by the page, limit, role and search query parameters.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var input usecase.ListUsersInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid query parameters")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.adminUC.ListUsers(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GetUser returns one account with its profile.
func (h *AdminHandler) GetUser(c echo.Context) error {
	user, err := h.adminUC.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateUser applies a partial update with an optional profile image.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var input usecase.AdminUpdateUserInput
	if err := bindRequest(c, &input); err != nil {
		return response.BindingError(c, "Invalid user input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	imageRef, err := storeProfileImage(c, h.images)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.adminUC.UpdateUser(c.Request().Context(), c.Param("id"), &input, imageRef)
	if err != nil {
		discardImage(c, h.images, imageRef, h.logger)

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// DeleteUser removes an account and its profile.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	output, err := h.adminUC.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
