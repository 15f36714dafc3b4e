//nolint:forbidigo // progress is written to the console
package display

import (
	"fmt"
	"io"

	"github.com/turbot/csvsplit/internal/splitter"
)

// ProgressPrinter writes a line to w as each stage of a split completes
type ProgressPrinter struct {
	w io.Writer
}

func NewProgressPrinter(w io.Writer) *ProgressPrinter {
	return &ProgressPrinter{w: w}
}

// PrintPlan reports the row count and chunk size, before any part is written
func (p *ProgressPrinter) PrintPlan(plan *splitter.PartitionPlan) {
	fmt.Fprintf(p.w, "Total rows (excluding header): %d\n", plan.TotalRows)
	fmt.Fprintf(p.w, "Rows per part: %d\n", plan.ChunkSize)
}

// PrintPartition reports a part which has been written and closed
func (p *ProgressPrinter) PrintPartition(result *splitter.PartitionResult) {
	fmt.Fprintf(p.w, "Created %s with %d rows\n", result.FileName, result.Rows)
}
