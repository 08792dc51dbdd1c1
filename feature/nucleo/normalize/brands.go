package normalize

import (
	"encoding/xml"
	"fmt"

	apperrors "catalog-bridge/core/errors"
	"catalog-bridge/feature/nucleo/models"
)

// ActionBrands is the brand feed operation. The upstream misspells the
// element as "Branch"; the name must match its WSDL, not English.
const ActionBrands = "Branch_funGetXMLData"

type brandRow struct {
	ID   string `xml:"bra_id"`
	Desc string `xml:"bra_desc"`
}

type brandDataSet struct {
	XMLName xml.Name   `xml:"NewDataSet"`
	Rows    []brandRow `xml:"Table"`
}

// Brands parses a brand feed response into canonical brands.
func Brands(soapResponse string) ([]models.Brand, error) {
	data, err := payload(soapResponse, ActionBrands)
	if err != nil {
		return nil, err
	}
	if data == NoDataSentinel {
		return []models.Brand{}, nil
	}

	var ds brandDataSet
	if err := xml.Unmarshal([]byte(data), &ds); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", ActionBrands, apperrors.ErrDataFormat, err)
	}
	if len(ds.Rows) == 0 {
		return nil, fmt.Errorf("%s: %w: missing Table container", ActionBrands, apperrors.ErrDataFormat)
	}

	brands := make([]models.Brand, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		b := models.Brand{
			ExternalID: row.ID,
			Name:       row.Desc,
		}
		if err := models.ValidateBrand(b); err != nil {
			return nil, fmt.Errorf("%s: %w", ActionBrands, err)
		}
		brands = append(brands, b)
	}

	return brands, nil
}
