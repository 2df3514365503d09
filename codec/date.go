package codec

import (
	"strings"
	"time"

	"github.com/GrGLeo/dataguard/batch"
)

// strftimeTokens maps the strftime-like tokens spec.md recognizes to Go's
// reference-time layout fragments. There is no third-party strftime
// translator in the example corpus, so this table-driven substitution is
// hand-written stdlib.
var strftimeTokens = map[string]string{
	"%Y": "2006",
	"%m": "01",
	"%d": "02",
	"%H": "15",
	"%M": "04",
	"%S": "05",
}

// CompileLayout translates a strftime-like format string into a Go
// reference-time layout. Each token is replaced in place, independently
// of the others, so "%Y-%m" and "%m-%Y" translate distinctly.
func CompileLayout(format string) string {
	layout := format
	for token, goLayout := range strftimeTokens {
		layout = strings.ReplaceAll(layout, token, goLayout)
	}
	return layout
}

// Date parses dates against a fixed, pre-compiled layout.
type Date struct {
	Layout string
}

// NewDate compiles a strftime-like format string into a Date codec.
func NewDate(format string) Date {
	return Date{Layout: CompileLayout(format)}
}

// ParseCell parses a single cell against the codec's layout.
func (d Date) ParseCell(raw []byte) (time.Time, bool) {
	trimmed := trimASCIISpace(raw)
	if len(trimmed) == 0 {
		return time.Time{}, false
	}
	v, err := time.Parse(d.Layout, string(trimmed))
	if err != nil {
		return time.Time{}, false
	}
	return v, true
}

// FillBatch implements Codec.
func (d Date) FillBatch(cells [][]byte, col *batch.Column) {
	for _, cell := range cells {
		v, ok := d.ParseCell(cell)
		col.AppendTime(v, ok)
	}
}
