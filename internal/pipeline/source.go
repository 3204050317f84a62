package pipeline

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinName is the conventional source name for reading standard input.
const StdinName = "-"

// openSource opens one input for line scanning. Rotated logs compressed
// with gzip or bzip2 are decompressed transparently by extension. A
// missing or empty file is a *ConfigError; nothing from the source has
// been processed yet when it is returned.
func openSource(name string) (io.ReadCloser, error) {
	if name == StdinName {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, &ConfigError{Source: name, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &ConfigError{Source: name, Err: err}
	}
	if info.Size() == 0 {
		f.Close()
		return nil, &ConfigError{Source: name, Err: ErrEmptySource}
	}

	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &ConfigError{Source: name, Err: fmt.Errorf("gzip: %w", err)}
		}
		return &compressedSource{Reader: zr, file: f, inner: zr}, nil
	case strings.HasSuffix(name, ".bz2"):
		return &compressedSource{Reader: bzip2.NewReader(f), file: f}, nil
	default:
		return f, nil
	}
}

// compressedSource pairs a decompressing reader with the file beneath
// it so Close releases both.
type compressedSource struct {
	io.Reader
	file  *os.File
	inner io.Closer // nil for bzip2, which has no Close
}

func (c *compressedSource) Close() error {
	if c.inner != nil {
		c.inner.Close()
	}
	return c.file.Close()
}
