package gml

import (
	"strconv"
	"strings"

	"github.com/twpayne/go-geom"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// Escape escapes a string for use in XML text or attribute content.
func Escape(s string) string {
	return escaper.Replace(s)
}

// formatOrdinate serializes a coordinate value in its shortest form
// that round-trips, with no rounding or precision control.
func formatOrdinate(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString("=\"")
	b.WriteString(Escape(value))
	b.WriteString("\"")
}

// joinTuple writes one coordinate tuple with the given ordinate
// separator, optionally reversing the tuple (3.2 axis order).
func joinTuple(b *strings.Builder, coord geom.Coord, sep string, reversed bool) {
	for i := range coord {
		if i > 0 {
			b.WriteString(sep)
		}
		j := i
		if reversed {
			j = len(coord) - 1 - i
		}
		b.WriteString(formatOrdinate(coord[j]))
	}
}
