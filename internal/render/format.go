package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/hepnos-wizard/internal/hepnos"
)

// Format is an output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatJx9  Format = "jx9"
)

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatJx9:
		return f, nil
	}
	return "", fmt.Errorf("invalid output format %q: must be 'json' or 'jx9'", s)
}

// Render writes doc to w in the given format. pathPrefix is only used by Jx9.
func Render(w io.Writer, format Format, doc *hepnos.Document, pathPrefix string) error {
	var (
		out string
		err error
	)
	switch format {
	case FormatJSON:
		out, err = JSON(doc)
	case FormatJx9:
		out, err = Jx9(doc, pathPrefix)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}
