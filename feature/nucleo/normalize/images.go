package normalize

import (
	"encoding/xml"
	"fmt"

	apperrors "catalog-bridge/core/errors"
	"catalog-bridge/core/utils"
)

// ActionImages is the per-product image feed operation.
const ActionImages = "ItemImages_funGetXMLData"

// ImageRecord is a normalized image feed row. The picture payload stays
// base64-encoded here; decoding and storing it is the image pipeline's job.
type ImageRecord struct {
	// ProductID is the external id of the owning product.
	ProductID int
	// Order is the positional marker; -1 designates the primary image.
	Order int
	// Picture is the base64-encoded image payload.
	Picture string
}

type imageRow struct {
	ItemID  string `xml:"item_id"`
	Order   string `xml:"Order"`
	Picture string `xml:"item_picture"`
}

type imageDataSet struct {
	XMLName xml.Name   `xml:"NewDataSet"`
	Rows    []imageRow `xml:"Table"`
}

// Images parses an image feed response. A product with a single image comes
// back as one Table element; decoding into a slice normalizes both
// cardinalities to a sequence. Image rows are never stock-filtered.
func Images(soapResponse string) ([]ImageRecord, error) {
	data, err := payload(soapResponse, ActionImages)
	if err != nil {
		return nil, err
	}
	if data == NoDataSentinel {
		return []ImageRecord{}, nil
	}

	var ds imageDataSet
	if err := xml.Unmarshal([]byte(data), &ds); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", ActionImages, apperrors.ErrDataFormat, err)
	}
	if len(ds.Rows) == 0 {
		return nil, fmt.Errorf("%s: %w: missing Table container", ActionImages, apperrors.ErrDataFormat)
	}

	records := make([]ImageRecord, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		records = append(records, ImageRecord{
			ProductID: utils.ToInt(row.ItemID),
			Order:     utils.ToInt(row.Order),
			Picture:   row.Picture,
		})
	}

	return records, nil
}
