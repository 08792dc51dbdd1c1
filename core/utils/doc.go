// Package utils provides common utility functions for the catalog bridge.
// It includes helper functions for type conversion of the string-typed
// numeric and boolean fields the legacy XML feeds deliver, and other shared
// logic that doesn't fit into domain-specific packages.
package utils
