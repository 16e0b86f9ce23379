// Package translate collects localized field values from an object graph and
// merges them with resolved field records into per-field translation data.
//
// The collector is a pure fold over the schema tree: it records, per locale,
// the raw value of every configured field path backed by a localized
// container, following relations and object bricks to arbitrary depth. The
// assembler then attaches those values to the resolved records, expands
// dropdown options into {translate, value} pairs, and resolves per-locale
// attribute labels through an admin translation catalog.
package translate
