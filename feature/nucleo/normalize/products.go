package normalize

import (
	"encoding/xml"
	"fmt"

	apperrors "catalog-bridge/core/errors"
	"catalog-bridge/core/utils"
	"catalog-bridge/feature/nucleo/models"
)

// Product feed operations. The base feed carries the full item master
// (including volume); the storage-group feed carries the physical-stock view
// and omits volume.
const (
	ActionProductsBase         = "wsFullJaus_Item_funGetXMLData"
	ActionProductsStorageGroup = "Item_funGetXMLDataByStorageGroup"
)

// productRow is the transient, string-typed table row shared by both
// product feeds. Field names are the upstream's, typos included.
type productRow struct {
	ItemID      string `xml:"item_id"`
	VendorCode  string `xml:"item_vendorCode"`
	Desc        string `xml:"item_desc"`
	CatID       string `xml:"cat_id"`
	BrandID     string `xml:"brand_id"`
	Guarantee   string `xml:"item_guarantee"`
	Annotation  string `xml:"item_annotation"`
	Annotation1 string `xml:"item_annotation1"`
	Annotation2 string `xml:"item_annotation2"`
	Disabled    string `xml:"item_disabled"`
	Code        string `xml:"item_code"`
	Wide        string `xml:"item_wide"`
	Higth       string `xml:"item_higth"`
	Large       string `xml:"item_large"`
	Volume      string `xml:"item_volume"`
	Weight      string `xml:"item_weight"`
	Stock       string `xml:"stock"`
}

type productDataSet struct {
	XMLName xml.Name     `xml:"NewDataSet"`
	Rows    []productRow `xml:"Table"`
}

// ProductsBase parses a base feed response into canonical products, taking
// each row's volume verbatim.
func ProductsBase(soapResponse string) ([]models.Product, error) {
	return products(soapResponse, ActionProductsBase, func(row productRow) float64 {
		return utils.ToFloat64(row.Volume)
	})
}

// ProductsStorageGroup parses a storage-group feed response into canonical
// products. The feed omits volume, so it is computed from the dimensions.
func ProductsStorageGroup(soapResponse string) ([]models.Product, error) {
	return products(soapResponse, ActionProductsStorageGroup, func(row productRow) float64 {
		return utils.ToFloat64(row.Wide) * utils.ToFloat64(row.Higth) * utils.ToFloat64(row.Large)
	})
}

func products(soapResponse, action string, volume func(productRow) float64) ([]models.Product, error) {
	data, err := payload(soapResponse, action)
	if err != nil {
		return nil, err
	}
	if data == NoDataSentinel {
		return []models.Product{}, nil
	}

	var ds productDataSet
	if err := xml.Unmarshal([]byte(data), &ds); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", action, apperrors.ErrDataFormat, err)
	}
	if len(ds.Rows) == 0 {
		return nil, fmt.Errorf("%s: %w: missing Table container", action, apperrors.ErrDataFormat)
	}

	out := make([]models.Product, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		// Only rows with positive stock become catalog entries.
		if row.Stock == "" || utils.ToFloat64(row.Stock) <= 0 {
			continue
		}

		active := utils.ToBool(row.Disabled)
		p := models.Product{
			ExternalID:      utils.ToInt(row.ItemID),
			Name:            row.Desc,
			CategoryID:      row.CatID,
			BrandID:         row.BrandID,
			FactoryWarranty: row.Guarantee,
			Description:     row.Annotation + " " + row.Annotation1 + " " + row.Annotation2,
			Active:          active,
			Skus: []models.Sku{{
				EanCode:       row.VendorCode,
				ReferenceCode: row.Code,
				Name:          row.Desc,
				SizeWidth:     utils.ToFloat64(row.Wide),
				SizeHeight:    utils.ToFloat64(row.Higth),
				SizeLength:    utils.ToFloat64(row.Large),
				Volume:        volume(row),
				Weight:        utils.ToFloat64(row.Weight),
				Active:        active,
			}},
		}
		if err := models.ValidateProduct(p); err != nil {
			return nil, fmt.Errorf("%s: %w", action, err)
		}
		out = append(out, p)
	}

	return out, nil
}
