package models_test

import (
	"testing"

	apperrors "catalog-bridge/core/errors"
	"catalog-bridge/feature/nucleo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct() models.Product {
	return models.Product{
		ExternalID: 7,
		Name:       "Chair",
		File:       &models.Image{File: "/catalog/nucleo/img/7_order_-1.png", Order: -1, ProductID: 7},
		Skus: []models.Sku{{
			Name:   "Chair",
			Volume: 2,
			Files: []models.Image{
				{File: "/catalog/nucleo/img/7_order_-1.png", Order: -1, ProductID: 7},
				{File: "/catalog/nucleo/img/7_order_1.png", Order: 1, ProductID: 7},
			},
		}},
	}
}

func TestProduct_Clone_DeepCopy(t *testing.T) {
	original := sampleProduct()
	clone := original.Clone()

	require.Equal(t, original, clone)
	assert.NotSame(t, original.File, clone.File)

	// Mutating the clone must not reach the original.
	clone.File.Order = 99
	clone.Skus[0].Name = "changed"
	clone.Skus[0].Files[0].Order = 99

	assert.Equal(t, -1, original.File.Order)
	assert.Equal(t, "Chair", original.Skus[0].Name)
	assert.Equal(t, -1, original.Skus[0].Files[0].Order)
}

func TestProduct_Clone_NilFields(t *testing.T) {
	p := models.Product{ExternalID: 1}
	clone := p.Clone()

	assert.Nil(t, clone.File)
	assert.Nil(t, clone.Skus)
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Product)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(p *models.Product) {},
		},
		{
			name:    "missing external id",
			mutate:  func(p *models.Product) { p.ExternalID = 0 },
			wantErr: true,
		},
		{
			name:    "no skus",
			mutate:  func(p *models.Product) { p.Skus = nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := sampleProduct()
			tt.mutate(&p)

			err := models.ValidateProduct(p)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBrand(t *testing.T) {
	assert.NoError(t, models.ValidateBrand(models.Brand{ExternalID: "10", Name: "ACME"}))

	err := models.ValidateBrand(models.Brand{Name: "no id"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = models.ValidateBrand(models.Brand{ExternalID: "10", Logo: "not-a-url"})
	assert.Error(t, err)
}
