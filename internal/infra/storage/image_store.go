// Package storage keeps uploaded profile images in a gocloud.dev/blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"usersvc/config"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/lifecycle"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"
	"usersvc/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes available in production.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// ReferencePrefix is prepended to every stored key to form the public reference.
const ReferencePrefix = "/uploads/"

type blobImageStore struct {
	bucket   *blob.Bucket
	maxBytes int64
	logger   *slog.Logger
}

// Params defines the dependencies of the image store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.ImageStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Upload.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open upload bucket %q", params.Config.Upload.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewWithBucket(bucket, params.Config.Upload.MaxBytes, params.Logger), nil
}

// NewWithBucket wraps an already opened bucket.
func NewWithBucket(bucket *blob.Bucket, maxBytes int64, logger *slog.Logger) service.ImageStore {
	return &blobImageStore{
		bucket:   bucket,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Save streams r into a new object named <uuid><ext>. The write is aborted,
// leaving nothing behind, when the payload exceeds the size limit.
func (s *blobImageStore) Save(ctx context.Context, r io.Reader, contentType, filename string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return "", domainerrors.ErrInvalidImageType
	}

	key := uuid.NewString() + imageExtension(filename, mediaType)

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: mediaType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open upload writer")
	}

	n, err := io.Copy(w, io.LimitReader(r, s.maxBytes+1))
	if err == nil && n > s.maxBytes {
		err = domainerrors.ErrImageTooLarge.WithDetails("maximum size is " + util.FormatBytes(s.maxBytes))
	}
	if err != nil {
		// Cancelling before Close discards the partial object.
		cancel()
		_ = w.Close()

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return "", appErr
		}

		return "", errors.Wrap(err, "failed to write upload")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish upload")
	}

	return ReferencePrefix + key, nil
}

func (s *blobImageStore) Open(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	key, ok := keyFromReference(ref)
	if !ok {
		return nil, "", domainerrors.ErrImageNotFound
	}

	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrImageNotFound
		}

		return nil, "", errors.Wrap(err, "failed to open upload")
	}

	return r, r.ContentType(), nil
}

func (s *blobImageStore) Delete(ctx context.Context, ref string) error {
	key, ok := keyFromReference(ref)
	if !ok {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete upload")
	}

	return nil
}

// keyFromReference accepts "/uploads/<key>" or a bare key and rejects anything
// that could escape the bucket namespace.
func keyFromReference(ref string) (string, bool) {
	key := strings.TrimPrefix(ref, ReferencePrefix)
	if key == "" || strings.ContainsAny(key, `/\`) || key != path.Clean(key) || strings.HasPrefix(key, ".") {
		return "", false
	}

	return key, true
}

var safeExtension = regexp.MustCompile(`^\.[a-z0-9]{1,5}$`)

// imageExtension keeps the client's extension only when it is URL safe.
func imageExtension(filename, mediaType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); safeExtension.MatchString(ext) {
		return ext
	}

	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return ""
}
