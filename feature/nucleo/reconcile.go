package nucleo

import (
	"catalog-bridge/feature/nucleo/models"
)

// Combine merges the base and storage-group product lists into one
// deduplicated catalog. Products are partitioned by external id into three
// disjoint groups, emitted in this fixed order:
//
//  1. Ids present in both feeds - the storage-group version wins, as it
//     carries the authoritative physical-stock data.
//  2. Ids only in the base feed.
//  3. Ids only in the storage-group feed.
//
// Within a group the source feed's relative order is preserved. The inputs
// are never mutated; the output holds fresh copies. The operation is
// deterministic and idempotent.
func Combine(base, storageGroup []models.Product) []models.Product {
	storageByID := make(map[int]models.Product, len(storageGroup))
	for _, p := range storageGroup {
		storageByID[p.ExternalID] = p
	}
	baseIDs := make(map[int]struct{}, len(base))
	for _, p := range base {
		baseIDs[p.ExternalID] = struct{}{}
	}

	var duplicated, baseOnly, storageOnly []models.Product

	for _, p := range base {
		if match, ok := storageByID[p.ExternalID]; ok {
			duplicated = append(duplicated, match.Clone())
		} else {
			baseOnly = append(baseOnly, p.Clone())
		}
	}

	for _, p := range storageGroup {
		if _, ok := baseIDs[p.ExternalID]; !ok {
			storageOnly = append(storageOnly, p.Clone())
		}
	}

	combined := make([]models.Product, 0, len(duplicated)+len(baseOnly)+len(storageOnly))
	combined = append(combined, duplicated...)
	combined = append(combined, baseOnly...)
	combined = append(combined, storageOnly...)

	return combined
}
