// internal/writers/sink.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink is where emitted rows go. Enter retargets the sink at a chromosome
// boundary and returns the writer for that chromosome; Close releases the
// current target. Implementations are not safe for concurrent use.
type Sink interface {
	Enter(chrom string) (io.Writer, error)
	Close() error
}

// StreamSink sends every chromosome to one shared stream. The caller owns
// flushing and closing the underlying writer.
type StreamSink struct {
	W io.Writer
}

func (s StreamSink) Enter(string) (io.Writer, error) { return s.W, nil }

func (s StreamSink) Close() error { return nil }

// SplitSink writes each chromosome to its own file, <chrom>_<input>.depth,
// under Dir (working directory if empty). The previous file is flushed and
// closed before the next opens, so at most one handle is live at a time.
type SplitSink struct {
	Dir       string
	InputName string

	f *os.File
	w *bufio.Writer
}

func (s *SplitSink) Enter(chrom string) (io.Writer, error) {
	if err := s.Close(); err != nil {
		return nil, err
	}
	path := filepath.Join(s.Dir, fmt.Sprintf("%s_%s.depth", chrom, s.InputName))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("writers: open %s: %w", path, err)
	}
	s.f = f
	s.w = bufio.NewWriter(f)
	return s.w, nil
}

func (s *SplitSink) Close() error {
	if s.f == nil {
		return nil
	}
	name := s.f.Name()
	var err error
	if e := s.w.Flush(); e != nil {
		err = fmt.Errorf("writers: flush %s: %w", name, e)
	}
	if e := s.f.Close(); e != nil && err == nil {
		err = fmt.Errorf("writers: close %s: %w", name, e)
	}
	s.f, s.w = nil, nil
	return err
}
