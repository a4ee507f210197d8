// Package imagehost implements product image storage on ImgBB or a gocloud.dev blob bucket.
package imagehost

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/constants"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
)

// Params holds dependencies for the ImageHost, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New selects the image host from imagehost.provider
func New(params Params) (service.ImageHost, error) {
	cfg := params.Config.ImageHost
	if cfg == nil {
		cfg = &config.ImageHostConfig{}
	}

	switch cfg.Provider {
	case constants.ImageHostProviderImgBB, "":
		params.Logger.Info("Using ImgBB image host")

		return NewImgBBHost(cfg.ImgBB, params.Logger)

	case constants.ImageHostProviderBlob:
		host, err := NewBlobHost(params.Ctx, cfg.Blob, params.Logger)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using blob image host",
			slog.String("bucket", cfg.Blob.BucketURL),
		)
		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return host.Close()
			},
		})

		return host, nil

	default:
		return nil, errors.Errorf("unknown image host provider: %s", cfg.Provider)
	}
}

// validateImage rejects empty uploads and files whose content is not an image.
func validateImage(image *entity.ImageUpload) error {
	if image.IsEmpty() {
		return domainerrors.ErrImageRequired
	}
	if !strings.HasPrefix(http.DetectContentType(image.Data), "image/") {
		return domainerrors.ErrImageUploadFailed.WithDetails("el archivo no es una imagen")
	}

	return nil
}

// imageContentType prefers the sniffed type over the client-declared one.
func imageContentType(image *entity.ImageUpload) string {
	if detected := http.DetectContentType(image.Data); strings.HasPrefix(detected, "image/") {
		return detected
	}

	return image.ContentType
}
