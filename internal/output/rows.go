// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"

	"depthstat/internal/stats"
)

// TotalLabel marks whole-chromosome rows and the grand-total row (where it
// is also the pseudo-chromosome name).
const TotalLabel = "TOTAL"

// DegenerateError reports a window whose covered-nucleotide delta is zero:
// its mean depth is undefined, and emitting NaN or garbage instead would
// poison downstream parsing.
type DegenerateError struct {
	Chrom string
	Label string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("output: window %s/%s covers zero nucleotides, mean depth undefined", e.Chrom, e.Label)
}

// FormatWindow renders one closed-window row: the accumulator's deltas
// against the boundary snapshot, labeled with the window index. No
// trailing newline.
func FormatWindow(acc stats.Accumulator, buf stats.Boundary, coverage bool) (string, error) {
	return formatRow(acc.Chrom, strconv.Itoa(buf.Index),
		acc.Depth-buf.Depth, acc.Nuc-buf.Nuc, acc.Pos-buf.Pos, coverage)
}

// FormatTotal renders a TOTAL row from absolute sums. Used for the final
// per-chromosome record and, with chrom == TotalLabel, for the grand total.
func FormatTotal(chrom string, depth, nuc, span int, coverage bool) (string, error) {
	return formatRow(chrom, TotalLabel, depth, nuc, span, coverage)
}

func formatRow(chrom, label string, depth, nuc, span int, coverage bool) (string, error) {
	if nuc == 0 {
		return "", &DegenerateError{Chrom: chrom, Label: label}
	}
	mean := float64(depth) / float64(nuc)
	if coverage {
		return fmt.Sprintf("%s\t%s\t%.3f\t%d\t%d", chrom, label, mean, nuc, span), nil
	}
	return fmt.Sprintf("%s\t%s\t%.3f", chrom, label, mean), nil
}
