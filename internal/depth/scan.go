// internal/depth/scan.go
package depth

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
)

// Scan reads chrom<TAB>pos<TAB>depth records from r and passes each one to
// visit. Blank lines are skipped. Fields may be separated by any run of
// whitespace. The first malformed line, visit error, or read error stops
// the scan.
//
// It is cancelable: Scan returns promptly once ctx is Done.
func Scan(ctx context.Context, r io.Reader, visit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 1 << 20
	sc.Buffer(make([]byte, 64*1024), maxLine)

	lineNum := 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNum++
		line := sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		rec, err := parseLine(line, lineNum)
		if err != nil {
			return err
		}
		if err := visit(rec); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("depth: read: %w", err)
	}
	return nil
}

func parseLine(line []byte, lineNum int) (Record, error) {
	fields := bytes.Fields(line)
	if len(fields) != 3 {
		return Record{}, &ParseError{
			LineNum: lineNum,
			Line:    string(line),
			Reason:  fmt.Sprintf("want 3 fields, got %d", len(fields)),
		}
	}
	pos, err := strconv.Atoi(string(fields[1]))
	if err != nil || pos < 0 {
		return Record{}, &ParseError{
			LineNum: lineNum,
			Line:    string(line),
			Reason:  "position must be a non-negative integer",
		}
	}
	dep, err := strconv.Atoi(string(fields[2]))
	if err != nil || dep < 0 {
		return Record{}, &ParseError{
			LineNum: lineNum,
			Line:    string(line),
			Reason:  "depth must be a non-negative integer",
		}
	}
	return Record{Chrom: string(fields[0]), Pos: pos, Depth: dep}, nil
}
