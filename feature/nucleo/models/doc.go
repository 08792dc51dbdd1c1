// Package models defines the canonical records of the normalized catalog:
// brands, products, single-SKU variants, and product images. Raw feed rows
// never leave the normalize package; everything downstream of it works with
// these strongly-typed records.
package models
