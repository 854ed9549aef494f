// Package codec reads UBL 2.1 source documents and writes CII D16B output.
//
// Decoding is namespace-agnostic: the source models match on local element
// names only, so documents qualify their elements with whatever prefixes
// they like. Document-kind detection sniffs the root element name before
// committing to a decoder.
package codec
