// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "usersvc/internal/delivery/context"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/labstack/echo/v4"
)

// profileImageField is the multipart part carrying an uploaded profile image.
const profileImageField = "profile_image"

// bindRequest decodes a JSON body with echo's binder. Form bodies are decoded
// through their `form` tags so that fields absent from the form stay nil.
func bindRequest(c echo.Context, dst any) error {
	if !isForm(c.Request()) {
		return c.Bind(dst)
	}

	params, err := c.FormParams()
	if err != nil {
		return errors.Wrap(err, "failed to parse form")
	}

	values := make(map[string]any, len(params))
	for key, vals := range params {
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "form",
		WeaklyTypedInput: true,
		Result:           dst,
	})
	if err != nil {
		return errors.Wrap(err, "failed to build form decoder")
	}

	return errors.Wrap(decoder.Decode(values), "failed to decode form")
}

func isForm(req *http.Request) bool {
	contentType := req.Header.Get(echo.HeaderContentType)

	return strings.HasPrefix(contentType, echo.MIMEMultipartForm) ||
		strings.HasPrefix(contentType, echo.MIMEApplicationForm)
}

// storeProfileImage saves the optional profile image part and returns its
// reference, or nil when the request carries no image.
func storeProfileImage(c echo.Context, images service.ImageStore) (*string, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}

	fileHeader, err := c.FormFile(profileImageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unreadable profile image")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	ref, err := images.Save(c.Request().Context(), file, fileHeader.Header.Get(echo.HeaderContentType), fileHeader.Filename)
	if err != nil {
		return nil, err
	}

	return &ref, nil
}

// discardImage removes an image stored for a request whose operation then failed.
func discardImage(c echo.Context, images service.ImageStore, ref *string, logger *slog.Logger) {
	if ref == nil {
		return
	}

	ctx := context.WithoutCancel(c.Request().Context())
	if err := images.Delete(ctx, *ref); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to discard orphaned image",
			slog.String("ref", *ref),
			slog.Any("error", err),
		)
	}
}
