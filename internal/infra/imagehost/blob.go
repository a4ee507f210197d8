package imagehost

import (
	"context"
	"log/slog"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	// Bucket drivers selectable through imagehost.blob.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/util"
)

const defaultBlobPrefix = "products/"

// BlobHost stores images in a gocloud.dev bucket and serves them from a public base URL.
type BlobHost struct {
	bucket        *blob.Bucket
	publicBaseURL string
	prefix        string
	logger        *slog.Logger
}

// NewBlobHost opens the configured bucket. Close the returned host on shutdown.
func NewBlobHost(ctx context.Context, cfg config.BlobConfig, logger *slog.Logger) (*BlobHost, error) {
	if cfg.BucketURL == "" {
		return nil, errors.New("blob bucket url is required")
	}
	if cfg.PublicBaseURL == "" {
		return nil, errors.New("blob public base url is required")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	return newBlobHost(bucket, cfg, logger), nil
}

func newBlobHost(bucket *blob.Bucket, cfg config.BlobConfig, logger *slog.Logger) *BlobHost {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultBlobPrefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &BlobHost{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		prefix:        prefix,
		logger:        logger,
	}
}

func (h *BlobHost) Upload(ctx context.Context, image *entity.ImageUpload) (string, error) {
	if err := validateImage(image); err != nil {
		return "", err
	}

	contentType := imageContentType(image)
	key := h.prefix + uuid.NewString() + imageExtension(image.Filename, contentType)

	if err := h.bucket.WriteAll(ctx, key, image.Data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
		Metadata:     map[string]string{"sha256": util.ContentChecksum(image.Data)},
	}); err != nil {
		return "", errors.Wrapf(err, "write image %s", key)
	}

	url := h.publicBaseURL + "/" + key
	h.logger.Info("Image stored in bucket",
		slog.String("key", key),
		slog.String("url", url),
		slog.String("size", util.FormatBytes(int64(len(image.Data)))),
	)

	return url, nil
}

// Delete removes an image previously returned by Upload. URLs outside this host and already
// deleted keys are ignored.
func (h *BlobHost) Delete(ctx context.Context, url string) error {
	key, ok := h.keyFor(url)
	if !ok {
		h.logger.Debug("Image url not served by this bucket, skipping delete", slog.String("url", url))

		return nil
	}

	if err := h.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete image %s", key)
	}

	return nil
}

func (h *BlobHost) keyFor(url string) (string, bool) {
	key, found := strings.CutPrefix(url, h.publicBaseURL+"/")
	if !found || !strings.HasPrefix(key, h.prefix) || strings.Contains(key, "..") {
		return "", false
	}

	return path.Clean(key), true
}

// Close releases the bucket.
func (h *BlobHost) Close() error {
	return h.bucket.Close()
}

func imageExtension(filename, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return ""
}
