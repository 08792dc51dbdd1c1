package nucleo

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	apperrors "catalog-bridge/core/errors"
	"catalog-bridge/feature/nucleo/models"
	"catalog-bridge/feature/nucleo/normalize"

	"github.com/minio/minio-go/v7"
)

// Images fetches the image feed for one product, stores each decoded
// picture in the object bucket, and returns the canonical image set with
// location references. Feed order is preserved.
func (s *Service) Images(ctx context.Context, productID int) ([]models.Image, error) {
	resp, err := s.call(ctx, normalize.ActionImages, itemIDParam(productID))
	if err != nil {
		return nil, apperrors.Wrapf(err, "load images for product %d", productID)
	}

	records, err := normalize.Images(resp)
	if err != nil {
		return nil, apperrors.Wrapf(err, "load images for product %d", productID)
	}

	images := make([]models.Image, 0, len(records))
	for _, rec := range records {
		location, err := s.storeImage(ctx, rec)
		if err != nil {
			return nil, apperrors.Wrapf(err, "load images for product %d", productID)
		}
		images = append(images, models.Image{
			File:      location,
			Order:     rec.Order,
			ProductID: rec.ProductID,
		})
	}

	return images, nil
}

// storeImage decodes the row's base64 payload and uploads it to the bucket
// under nucleo/img/{id}_order_{n}.png, returning the object path.
func (s *Service) storeImage(ctx context.Context, rec normalize.ImageRecord) (string, error) {
	data, err := base64.StdEncoding.DecodeString(rec.Picture)
	if err != nil {
		return "", fmt.Errorf("image %d_order_%d: %w: %v", rec.ProductID, rec.Order, apperrors.ErrDataFormat, err)
	}

	objectName := fmt.Sprintf("nucleo/img/%d_order_%d.png", rec.ProductID, rec.Order)
	_, err = s.store.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "image/png"})
	if err != nil {
		return "", fmt.Errorf("store image %s: %w", objectName, err)
	}

	return "/" + s.bucket + "/" + objectName, nil
}

// attachImages enriches each product with its image set, strictly one
// product at a time: every image call consumes the shared session token and
// the upstream documents no concurrency guarantee. The first failure aborts
// the whole pass; no partial result is returned.
func (s *Service) attachImages(ctx context.Context, products []models.Product) error {
	for i := range products {
		images, err := s.Images(ctx, products[i].ExternalID)
		if err != nil {
			return apperrors.Wrapf(err, "attach images to product %d", products[i].ExternalID)
		}
		applyImages(&products[i], images)
	}
	return nil
}

// applyImages selects the Order == -1 record as the product's primary image
// and hands the full set to the first variant.
func applyImages(p *models.Product, images []models.Image) {
	for i := range images {
		if images[i].Order == -1 {
			img := images[i]
			p.File = &img
			break
		}
	}
	if len(images) > 0 && len(p.Skus) > 0 {
		p.Skus[0].Files = images
	}
}
