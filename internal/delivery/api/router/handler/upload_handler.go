package handler

import (
	"net/http"

	"usersvc/internal/delivery/api/response"
	"usersvc/internal/domain/service"
	"usersvc/internal/infra/storage"

	"github.com/labstack/echo/v4"
)

// UploadHandler serves stored profile images.
type UploadHandler struct {
	images service.ImageStore
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(images service.ImageStore) *UploadHandler {
	return &UploadHandler{images: images}
}

// ServeImage streams the image stored under the :key path parameter.
func (h *UploadHandler) ServeImage(c echo.Context) error {
	body, contentType, err := h.images.Open(c.Request().Context(), storage.ReferencePrefix+c.Param("key"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer body.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400, immutable")
	c.Response().Header().Set("X-Content-Type-Options", "nosniff")

	return c.Stream(http.StatusOK, contentType, body)
}
