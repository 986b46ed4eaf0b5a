package service

import (
	"context"
	"io"
)

// ImageStore persists uploaded profile images and hands back stable references.
type ImageStore interface {
	// Save stores an image and returns its reference. Non-image content types
	// and payloads above the configured limit are rejected.
	Save(ctx context.Context, r io.Reader, contentType, filename string) (string, error)

	// Open returns a reader for a previously stored reference and its content type.
	Open(ctx context.Context, ref string) (io.ReadCloser, string, error)

	// Delete removes a stored reference. Unknown references are ignored.
	Delete(ctx context.Context, ref string) error
}
