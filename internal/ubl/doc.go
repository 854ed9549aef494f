// Package ubl provides the typed source model: UBL 2.1 Invoice and
// CreditNote document graphs as read by the mapping engine.
//
// The structs bind with encoding/xml using local element names only, so the
// decoder accepts documents regardless of namespace prefixing. Optionality
// follows the UBL schema: aggregates are pointers (nil means absent), text
// and code values are plain strings (empty means absent), and repeated
// elements are slices.
//
// Numeric and date values stay as the document's literal text. Parsing and
// normalization are the engine's concern, not the binding's — a conversion
// must see exactly what the document carried.
package ubl
