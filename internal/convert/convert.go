package convert

import (
	"errors"
	"fmt"

	"ubl2cii/internal/diagnostic"
)

var (
	// ErrNilDocument is returned when the source document is nil.
	ErrNilDocument = errors.New("source document is nil")
	// ErrNilSink is returned when the diagnostic sink is nil.
	ErrNilSink = errors.New("diagnostic sink is nil")
)

// converter carries the per-run diagnostic sink. All entity converters hang
// off it so that findings reach the caller without threading the sink
// through every signature.
type converter struct {
	diags *diagnostic.Sink
}

// noteDiscarded records surplus source entries at a call site where the
// target schema admits only one. The mapping output is unaffected.
func (c *converter) noteDiscarded(total int, term, path string) {
	if total <= 1 {
		return
	}
	c.diags.AddInfo("first-entry-only",
		fmt.Sprintf("%d surplus entries discarded; only the first is mapped", total-1),
		term, path)
}
