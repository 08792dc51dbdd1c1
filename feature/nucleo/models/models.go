package models

// Brand is the canonical representation of a brand feed row.
type Brand struct {
	// ExternalID is the upstream brand identifier.
	ExternalID string `json:"externalId" validate:"required"`
	// Name is the brand display name.
	Name string `json:"name"`
	// Logo is an optional logo URL. The legacy feed never supplies one.
	Logo string `json:"logo,omitempty" validate:"omitempty,url"`
}

// Image is one entry of a product's image set. An Order of -1 marks the
// product's primary image; all other orders are secondary, kept in feed
// order.
type Image struct {
	// File is the location reference of the stored image.
	File string `json:"file"`
	// Order is the positional marker from the feed (-1 means primary).
	Order int `json:"order"`
	// ProductID is the external id of the owning product.
	ProductID int `json:"productId"`
}

// Sku is a product variant. The legacy protocol is single-SKU-per-item, so
// exactly one Sku is produced per feed row.
type Sku struct {
	EanCode       string  `json:"eanCode"`
	ReferenceCode string  `json:"referenceCode"`
	Name          string  `json:"name"`
	SizeWidth     float64 `json:"sizeWidth"`
	SizeHeight    float64 `json:"sizeHeight"`
	SizeLength    float64 `json:"sizeLength"`
	// Volume is taken verbatim when the feed supplies it; the storage-group
	// feed omits it and it is computed as width * height * length instead.
	Volume        float64 `json:"volume"`
	Weight        float64 `json:"weight"`
	Active        bool    `json:"active"`
	StockInfinite bool    `json:"stockInfinite"`
	StockTotal    int     `json:"stockTotal"`
	StockCommitted int    `json:"stockCommitted"`
	StockSecurity int     `json:"stockSecurity"`
	PriceList     float64 `json:"priceList"`
	PriceCost     float64 `json:"priceCost"`
	// Files is the full image set attached by the image pipeline; absent
	// until attachment runs.
	Files []Image `json:"files,omitempty"`
}

// Product is the canonical representation of a product feed row. ExternalID
// is unique within a reconciled catalog.
type Product struct {
	ExternalID      int    `json:"externalId" validate:"required"`
	Name            string `json:"name"`
	CategoryID      string `json:"categoryId"`
	BrandID         string `json:"brandId"`
	FactoryWarranty string `json:"factoryWarranty"`
	Description     string `json:"description"`
	Active          bool   `json:"active"`
	// File is the primary image (the feed entry with Order == -1), absent
	// when the product has none.
	File *Image `json:"file,omitempty"`
	// Skus holds the product variants; always exactly one per legacy row.
	Skus []Sku `json:"skus" validate:"required,min=1"`
}

// Clone returns a deep copy of the product; reconciliation hands out copies
// so the source feed slices are never mutated.
func (p Product) Clone() Product {
	out := p
	if p.File != nil {
		f := *p.File
		out.File = &f
	}
	if p.Skus != nil {
		out.Skus = make([]Sku, len(p.Skus))
		for i, s := range p.Skus {
			if s.Files != nil {
				files := make([]Image, len(s.Files))
				copy(files, s.Files)
				s.Files = files
			}
			out.Skus[i] = s
		}
	}
	return out
}
