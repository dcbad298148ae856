// internal/stats/stats_test.go
package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"depthstat/internal/depth"
)

func TestAccumulatorResetAdd(t *testing.T) {
	var a Accumulator
	a.Reset(depth.Record{Chrom: "chr1", Pos: 3, Depth: 5})
	assert.Equal(t, Accumulator{Chrom: "chr1", Depth: 5, Nuc: 1, Pos: 3}, a)

	a.Add(depth.Record{Chrom: "chr1", Pos: 7, Depth: 2})
	assert.Equal(t, Accumulator{Chrom: "chr1", Depth: 7, Nuc: 2, Pos: 7}, a)
}

func TestBoundaryResetStartsAtIndexOne(t *testing.T) {
	b := Boundary{Depth: 9, Nuc: 9, Pos: 9, Index: 9}
	b.Reset()
	assert.Equal(t, Boundary{Index: 1}, b)
}

func TestBoundarySnapshotAdvancesIndex(t *testing.T) {
	var b Boundary
	b.Reset()
	b.Snapshot(Accumulator{Chrom: "chr1", Depth: 11, Nuc: 2, Pos: 2})
	assert.Equal(t, Boundary{Depth: 11, Nuc: 2, Pos: 2, Index: 2}, b)
	b.Snapshot(Accumulator{Chrom: "chr1", Depth: 18, Nuc: 3, Pos: 3})
	assert.Equal(t, Boundary{Depth: 18, Nuc: 3, Pos: 3, Index: 3}, b)
}

func TestGrandTotalAbsorb(t *testing.T) {
	var g GrandTotal
	g.Absorb(Accumulator{Chrom: "chr1", Depth: 18, Nuc: 3, Pos: 3})
	g.Absorb(Accumulator{Chrom: "chr2", Depth: 10, Nuc: 1, Pos: 1})
	assert.Equal(t, GrandTotal{Depth: 28, Nuc: 4, Span: 4}, g)
}
