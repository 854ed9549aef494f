// Package diagnostic provides the caller-supplied sink the conversion
// engine reports into.
//
// The engine never fails on semantic findings: missing-but-optional source
// data yields absent output, vocabulary mismatches are normalized, and
// discarded surplus entries are noted. All of that flows into a Sink as
// records with a severity, a stable code, and an optional business term
// (EN 16931 "BT-n") and document location.
//
// Storage and presentation of the records belong to the caller; the engine
// only appends.
package diagnostic
