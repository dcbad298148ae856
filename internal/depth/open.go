// internal/depth/open.go
package depth

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Open returns a reader for the depth stream at path; "-" selects stdin.
// Gzip'd files are accepted transparently, recognized by the 1F 8B magic
// bytes or a .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !isGzip(fh, path) {
		return fh, nil
	}
	gr, err := gzip.NewReader(fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return &gzipFile{Reader: gr, gz: gr, fh: fh}, nil
}

// isGzip sniffs the first two bytes of fh and rewinds it.
func isGzip(fh *os.File, path string) bool {
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	return (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz")
}

// gzipFile tears down both the decompressor and the file behind it.
type gzipFile struct {
	io.Reader
	gz *gzip.Reader
	fh *os.File
}

func (g *gzipFile) Close() error {
	err := g.gz.Close()
	if cerr := g.fh.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
