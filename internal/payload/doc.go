// Package payload provides the intermediate representation and writer for the
// Magento SaveProduct input fragment.
//
// The fragment is not JSON: keys are bare identifiers, enum values
// (SIMPLE, CONFIGURABLE, THUMBNAIL, ...) and numbers are emitted verbatim,
// and string values are wrapped in backslash-escaped quotes because the
// finished fragment is embedded inside a single JSON string value of the
// GraphQL request body.
//
// Business code builds an ordered tree of nodes (Object, Array, String, Raw)
// and renders it exactly once through the writer, so the escaping rules live
// in one place and serialization is deterministic: rendering the same tree
// twice yields byte-identical output.
package payload
