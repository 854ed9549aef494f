// Package cii provides the typed target model: a CII D16B Cross Industry
// Invoice document graph as written by the mapping engine.
//
// The structs bind with encoding/xml using literal prefixed element names
// (rsm:, ram:, udt:, qdt:); the matching namespace declarations are carried
// as attributes on the document root, set by NewCrossIndustryInvoice.
//
// Struct field order follows the D16B schema sequence, because the schema
// validates element position and encoding/xml emits fields in declaration
// order. Keep that order when touching these types.
package cii
