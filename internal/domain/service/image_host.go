package service

import (
	"context"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
)

// ImageHost stores product images and returns a public URL for them.
type ImageHost interface {
	// Upload stores the image and returns its hosted URL.
	Upload(ctx context.Context, image *entity.ImageUpload) (string, error)

	// Delete releases a previously hosted image. Hosts without a delete API log and return nil.
	Delete(ctx context.Context, url string) error
}
