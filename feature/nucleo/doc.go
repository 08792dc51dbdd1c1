// Package nucleo implements the catalog integration against the legacy
// Nucleo inventory web service.
//
// The upstream exposes two partially-overlapping product feeds (the item
// master and the storage-group stock view), a brand feed, and a per-product
// image feed, all behind a SOAP protocol that requires a short-lived session
// token. This package normalizes those feeds into one canonical catalog:
//
//  1. The Authenticator caches the session token (2-minute TTL) and
//     collapses concurrent refreshes into a single login.
//  2. The Service drives token-bearing SOAP calls through core/soap and
//     hands responses to the normalize subpackage.
//  3. Combine reconciles the two product feeds into a deduplicated catalog,
//     preferring the storage-group version for overlapping ids.
//  4. The image pipeline fetches each product's image set sequentially,
//     stores the decoded pictures in object storage, marks the order -1
//     entry as the primary image, and attaches the set to the first variant.
//
// # Components
//
//   - Authenticator: session lifecycle, single-flight refresh.
//   - Service: orchestrates feeds, reconciliation, and image attachment.
//   - Handler: exposes the HTTP endpoints under /nucleo.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /nucleo/login : authenticate and return the session token.
//   - GET /nucleo/brands : list brands.
//   - GET /nucleo/products/base : list base-feed products.
//   - GET /nucleo/products/storage/group : list storage-group products.
//   - GET /nucleo/products/combined : list the reconciled catalog.
//   - GET /nucleo/products/combined/withimages : reconciled catalog with images.
//   - GET /nucleo/product/images/load/:id : image set for one product.
package nucleo
