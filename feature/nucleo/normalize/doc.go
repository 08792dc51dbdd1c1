// Package normalize turns raw SOAP responses from the Nucleo web service
// into canonical catalog records.
//
// Every response is parsed in two passes: the outer envelope yields the
// action's result string, and that string - itself an XML-encoded DataSet -
// is parsed again into tabular rows. The two passes fail differently on
// purpose:
//
//   - A broken envelope or missing result element is ErrParse.
//   - The fixed "Not data found." sentinel in the result slot is NOT an
//     error; the feed matched nothing and the parser returns an empty slice.
//   - A non-sentinel payload whose NewDataSet/Table container is missing is
//     ErrDataFormat: the feed promised data but is malformed.
//
// Rows are always normalized to a slice regardless of cardinality, numeric
// and boolean fields are coerced from their string form, products with
// empty or zero stock are dropped, and the storage-group feed's missing
// volume is computed from the row's dimensions.
package normalize
