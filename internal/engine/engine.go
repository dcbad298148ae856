// internal/engine/engine.go
package engine

import (
	"context"
	"fmt"
	"io"

	"depthstat/internal/depth"
	"depthstat/internal/output"
	"depthstat/internal/stats"
	"depthstat/internal/window"
	"depthstat/internal/writers"
)

// Engine drives one pass over an ordered depth stream: accumulate records,
// close windows per the policy, roll finished chromosomes into the grand
// total, and retarget the sink at every chromosome boundary. State is a
// single accumulator/boundary pair, so memory stays bounded no matter how
// long the stream is.
type Engine struct {
	Policy   window.Policy
	Sink     writers.Sink
	Coverage bool
	Compact  bool // windowing disabled; the last chromosome flushes as a TOTAL row
}

// Run consumes records from r until EOF. Empty input emits nothing and
// returns nil. All errors are terminal; the sink is closed on every return
// path, including the error ones.
func (e *Engine) Run(ctx context.Context, r io.Reader) (err error) {
	defer func() {
		if cerr := e.Sink.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var (
		acc   stats.Accumulator
		buf   stats.Boundary
		grand stats.GrandTotal
		w     io.Writer
		open  bool
	)

	writeRow := func(row string) error {
		if _, werr := fmt.Fprintln(w, row); werr != nil {
			return fmt.Errorf("engine: write: %w", werr)
		}
		return nil
	}

	begin := func(rec depth.Record) error {
		acc.Reset(rec)
		buf.Reset()
		var werr error
		if w, werr = e.Sink.Enter(rec.Chrom); werr != nil {
			return werr
		}
		open = true
		return nil
	}

	// Whole-chromosome TOTAL row.
	finish := func() error {
		row, ferr := output.FormatTotal(acc.Chrom, acc.Depth, acc.Nuc, acc.Pos, e.Coverage)
		if ferr != nil {
			return ferr
		}
		if werr := writeRow(row); werr != nil {
			return werr
		}
		grand.Absorb(acc)
		return nil
	}

	if err = depth.Scan(ctx, r, func(rec depth.Record) error {
		if !open {
			return begin(rec)
		}
		if rec.Chrom != acc.Chrom {
			if ferr := finish(); ferr != nil {
				return ferr
			}
			return begin(rec)
		}
		acc.Add(rec)
		if e.Policy.ShouldClose(acc, buf) {
			row, ferr := output.FormatWindow(acc, buf, e.Coverage)
			if ferr != nil {
				return ferr
			}
			if werr := writeRow(row); werr != nil {
				return werr
			}
			buf.Snapshot(acc)
		}
		return nil
	}); err != nil {
		return err
	}
	if !open {
		return nil
	}

	// End of stream. With windowing on, the last chromosome flushes as its
	// pending window; in compact mode it gets the same TOTAL row a
	// chromosome switch would have produced.
	if e.Compact {
		if err = finish(); err != nil {
			return err
		}
	} else {
		row, ferr := output.FormatWindow(acc, buf, e.Coverage)
		if ferr != nil {
			return ferr
		}
		if err = writeRow(row); err != nil {
			return err
		}
		grand.Absorb(acc)
	}

	// Grand total, reported under the TOTAL pseudo-chromosome so split
	// output gets its own file for it.
	if w, err = e.Sink.Enter(output.TotalLabel); err != nil {
		return err
	}
	row, ferr := output.FormatTotal(output.TotalLabel, grand.Depth, grand.Nuc, grand.Span, e.Coverage)
	if ferr != nil {
		return ferr
	}
	return writeRow(row)
}
