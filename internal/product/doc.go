// Package product turns an assembled object into the catalog payload tree.
//
// The builder classifies each object into one of three roles by comparing its
// resolved product-type field against the configured simple and configurable
// type values: a standalone simple product, a variant (a simple product whose
// parent is a configurable product of the same class), or a configurable
// parent. Variants are transmitted nested inside their parent's
// product_variants list; configurable parents declare their children's
// composite SKUs. Composite SKUs chain every valid ancestor's own SKU from
// root to leaf, space-joined then hyphenated.
package product
