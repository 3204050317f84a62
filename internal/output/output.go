// Package output renders finished reports. Renderers are pure
// presentation; every number they print was computed by the pipeline.
package output

import (
	"fmt"
	"io"

	"github.com/tinytelemetry/grist/internal/model"
)

// Format names the supported presentation formats.
const (
	FormatPlain = "plain"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// NewRenderer returns the renderer for the named format, writing to w.
// Verbose renderers additionally list every surviving record.
func NewRenderer(format string, w io.Writer, verbose bool) (model.Renderer, error) {
	switch format {
	case FormatPlain, "":
		return &PlainRenderer{w: w, verbose: verbose}, nil
	case FormatCSV:
		return &CSVRenderer{w: w, verbose: verbose}, nil
	case FormatJSON:
		return &JSONRenderer{w: w, verbose: verbose}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
