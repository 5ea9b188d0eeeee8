package euklid

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions controls the output of [SVG] and [WriteSVG].
type SVGOptions struct {
	// MaxPrecision caps the number of decimals per coordinate. Zero means as
	// many as needed to round-trip.
	MaxPrecision int
}

// SVG renders path elements as SVG path data, for example
// "M0,0 L1,0 Z". [Elements] adapts a [PathIterator].
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	var sb strings.Builder
	WriteSVG(&sb, seq, opts)
	return sb.String()
}

var svgCommands = [...]byte{
	SegMoveTo:  'M',
	SegLineTo:  'L',
	SegQuadTo:  'Q',
	SegCubicTo: 'C',
	SegClose:   'Z',
}

// WriteSVG is like [SVG] but writes the path data to w. It stops at the first
// write error and returns it.
//
// Commands are absolute and separated by single spaces; no shorthand forms
// are used.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var buf []byte
	first := true
	for el := range seq {
		if el.Kind < 0 || int(el.Kind) >= len(svgCommands) {
			panic(fmt.Sprintf("invalid segment type %d", el.Kind))
		}
		buf = buf[:0]
		if !first {
			buf = append(buf, ' ')
		}
		first = false
		buf = append(buf, svgCommands[el.Kind])
		pts := [3]Point{el.P0, el.P1, el.P2}
		for i, pt := range pts[:el.Kind.Points()] {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = appendCoord(buf, pt.X, opts.MaxPrecision)
			buf = append(buf, ',')
			buf = appendCoord(buf, pt.Y, opts.MaxPrecision)
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// appendCoord formats n with at most prec decimals, dropping trailing zeros.
// A prec of 0 or less uses the shortest exact representation. Values that
// round to zero are written as "0", never "-0".
func appendCoord(buf []byte, n float64, prec int) []byte {
	if n == 0 {
		// Drop the sign of negative zero.
		n = 0
	}
	if prec <= 0 {
		return strconv.AppendFloat(buf, n, 'f', -1, 64)
	}
	start := len(buf)
	buf = strconv.AppendFloat(buf, n, 'f', prec, 64)
	if bytes.IndexByte(buf[start:], '.') >= 0 {
		buf = bytes.TrimRight(buf, "0")
		buf = bytes.TrimSuffix(buf, []byte("."))
	}
	if string(buf[start:]) == "-0" {
		buf = append(buf[:start], '0')
	}
	return buf
}
