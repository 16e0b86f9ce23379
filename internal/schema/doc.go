// Package schema models the runtime class metadata and object tree of the
// host product store, and resolves dotted field paths against it.
//
// Objects are self-describing: a Class carries an ordered set of
// FieldDefinitions (a tagged enumeration over scalar, relation, brick
// container and localized container variants), and every Object holds its
// values keyed by field name. Nothing here is statically typed per product
// class; the shape lives entirely in the schema metadata, which is what lets
// one connector serve arbitrary product classes.
//
// # Field paths
//
// A path is either a bare attribute name or "attribute.subfield":
//
//   - "sku" reads a direct field (including fields merged in from localized
//     containers, which yield their default-locale value)
//   - "brand.name" reads "name" on the object related through "brand"
//   - "technicalDetails.material" reads "material" on the brick item
//     registered under "technicalDetails" (matched case-insensitively)
//
// Resolution is performed by Resolver, which also applies the per-type value
// normalization: date formatting, raw-value unwrapping, country/language
// display names, and control-character sanitization.
package schema
