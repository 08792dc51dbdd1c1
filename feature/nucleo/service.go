package nucleo

import (
	"context"

	apperrors "catalog-bridge/core/errors"
	"catalog-bridge/core/soap"
	"catalog-bridge/core/storage"
	"catalog-bridge/core/utils"
	"catalog-bridge/feature/nucleo/models"
	"catalog-bridge/feature/nucleo/normalize"

	"go.uber.org/zap"
)

// Service orchestrates the catalog operations against the legacy web
// service: authentication, the brand and product feeds, reconciliation, and
// image attachment.
type Service struct {
	client *soap.Client
	auth   *Authenticator
	store  storage.Client
	bucket string
	logger *zap.Logger
	policy soap.Backoff
}

// NewService creates a new catalog service.
func NewService(client *soap.Client, auth *Authenticator, store storage.Client, bucket string, logger *zap.Logger, policy soap.Backoff) *Service {
	return &Service{
		client: client,
		auth:   auth,
		store:  store,
		bucket: bucket,
		logger: logger,
		policy: policy,
	}
}

// Authenticate returns a valid session token, logging in only when the
// cached session has expired.
func (s *Service) Authenticate(ctx context.Context) (string, error) {
	return s.auth.Token(ctx)
}

// Brands returns all brands from the upstream feed.
func (s *Service) Brands(ctx context.Context) ([]models.Brand, error) {
	resp, err := s.call(ctx, normalize.ActionBrands)
	if err != nil {
		return nil, apperrors.Wrapf(err, "list brands")
	}

	brands, err := normalize.Brands(resp)
	if err != nil {
		return nil, apperrors.Wrapf(err, "list brands")
	}
	return brands, nil
}

// ProductsBase returns the item-master feed: every product with positive
// stock, volume taken verbatim.
func (s *Service) ProductsBase(ctx context.Context) ([]models.Product, error) {
	resp, err := s.call(ctx, normalize.ActionProductsBase)
	if err != nil {
		return nil, apperrors.Wrapf(err, "list base products")
	}

	products, err := normalize.ProductsBase(resp)
	if err != nil {
		return nil, apperrors.Wrapf(err, "list base products")
	}
	return products, nil
}

// ProductsStorageGroup returns the physical-stock feed for the configured
// storage group.
func (s *Service) ProductsStorageGroup(ctx context.Context) ([]models.Product, error) {
	resp, err := s.call(ctx, normalize.ActionProductsStorageGroup,
		soap.Param{Name: "intStorageGroupId", Value: s.client.Config().StorageGroup})
	if err != nil {
		return nil, apperrors.Wrapf(err, "list storage-group products")
	}

	products, err := normalize.ProductsStorageGroup(resp)
	if err != nil {
		return nil, apperrors.Wrapf(err, "list storage-group products")
	}
	return products, nil
}

// ProductsCombined fetches both product feeds and reconciles them into one
// deduplicated catalog.
func (s *Service) ProductsCombined(ctx context.Context) ([]models.Product, error) {
	base, err := s.ProductsBase(ctx)
	if err != nil {
		return nil, err
	}

	storageGroup, err := s.ProductsStorageGroup(ctx)
	if err != nil {
		return nil, err
	}

	combined := Combine(base, storageGroup)

	s.logger.Debug("reconciled product feeds",
		zap.Int("base", len(base)),
		zap.Int("storage_group", len(storageGroup)),
		zap.Int("combined", len(combined)),
	)

	return combined, nil
}

// ProductsCombinedWithImages reconciles both feeds and then attaches each
// product's image set. limit bounds how many reconciled products enter the
// attachment pass; zero or negative means all of them.
func (s *Service) ProductsCombinedWithImages(ctx context.Context, limit int) ([]models.Product, error) {
	combined, err := s.ProductsCombined(ctx)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(combined) > limit {
		combined = combined[:limit]
	}

	if err := s.attachImages(ctx, combined); err != nil {
		return nil, err
	}

	return combined, nil
}

// call sends a token-bearing request for an action and returns the raw
// response body.
func (s *Service) call(ctx context.Context, action string, params ...soap.Param) (string, error) {
	token, err := s.auth.Token(ctx)
	if err != nil {
		return "", err
	}

	envelope := soap.Envelope(s.client.Config(), token, action, params...)
	return s.client.Call(ctx, action, envelope, s.policy)
}

func itemIDParam(productID int) soap.Param {
	return soap.Param{Name: "intItemId", Value: utils.ToString(productID)}
}
