// internal/stats/stats.go
package stats

import "depthstat/internal/depth"

// Accumulator carries the running sums for the chromosome currently being
// processed. It is owned exclusively by the engine loop; nothing else
// mutates it.
type Accumulator struct {
	Chrom string
	Depth int // cumulative depth over all records seen
	Nuc   int // covered positions seen (record count)
	Pos   int // last position seen
}

// Reset starts a new chromosome from its first record.
func (a *Accumulator) Reset(r depth.Record) {
	a.Chrom, a.Depth, a.Nuc, a.Pos = r.Chrom, r.Depth, 1, r.Pos
}

// Add folds one more record of the current chromosome into the sums.
func (a *Accumulator) Add(r depth.Record) {
	a.Depth += r.Depth
	a.Nuc++
	a.Pos = r.Pos
}

// Boundary is the accumulator snapshot taken at the last window close,
// plus the 1-based index of the window currently being filled. Per-window
// values are deltas of the accumulator against this snapshot.
type Boundary struct {
	Depth int
	Nuc   int
	Pos   int
	Index int
}

// Reset clears the snapshot for a new chromosome; window indices restart
// at 1.
func (b *Boundary) Reset() {
	*b = Boundary{Index: 1}
}

// Snapshot closes the current window: copy the accumulator's sums and move
// on to the next index.
func (b *Boundary) Snapshot(a Accumulator) {
	b.Depth, b.Nuc, b.Pos = a.Depth, a.Nuc, a.Pos
	b.Index++
}

// GrandTotal sums finished chromosomes; reported once at end of stream.
type GrandTotal struct {
	Depth int
	Nuc   int
	Span  int
}

// Absorb folds a completed chromosome's totals into the grand total.
func (g *GrandTotal) Absorb(a Accumulator) {
	g.Depth += a.Depth
	g.Nuc += a.Nuc
	g.Span += a.Pos
}
