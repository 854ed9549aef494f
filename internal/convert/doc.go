// Package convert implements the UBL 2.1 to CII D16B mapping engine.
//
// Conversion pipeline, strictly top-down:
//  1. Document assemblers (Invoice, CreditNote) walk the source tree once
//     and populate the three target sections: document context, document
//     header, trade transaction.
//  2. Entity converters map one source aggregate to one target aggregate
//     (party, document reference, trade tax, allowance/charge, payment
//     terms, monetary summation, line item).
//  3. Field converters map leaf values (identifier, amount, text, date,
//     address).
//
// Discipline:
//   - Set-if-present: a target field is only written when the source value
//     is non-nil and non-empty; empty string counts as absent.
//   - Mandatory target sections are always constructed, even empty.
//   - Every target node is freshly allocated per call; source and target
//     graphs never alias.
//   - "First entry only" rules are written as explicit indexed accesses at
//     each call site; the per-site policy differs and must stay visible.
//
// The engine is a pure function of its input: no shared state, no I/O,
// safe for concurrent calls on distinct documents. Semantic findings go
// into the caller's diagnostic.Sink; the only error returns are the nil
// document / nil sink preconditions.
package convert
