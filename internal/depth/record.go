// internal/depth/record.go
package depth

import "fmt"

// Record is one per-nucleotide depth observation as produced by
// `samtools depth`-style tools: chromosome, position, read depth.
// Positions are strictly increasing within a chromosome and records
// arrive grouped by chromosome.
type Record struct {
	Chrom string
	Pos   int
	Depth int
}

// ParseError reports an input line that does not parse into a Record.
// Processing stops at the first one; a half-parsed stream would corrupt
// every downstream total.
type ParseError struct {
	LineNum int
	Line    string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("depth: malformed record at line %d (%q): %s", e.LineNum, e.Line, e.Reason)
}
