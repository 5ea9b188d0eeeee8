package scene

import (
	"fmt"
	"strconv"
	"unicode"

	"honnef.co/go/euklid"
)

// ParsePath parses absolute SVG path commands (M, L, Q, C and Z), the format
// written by [euklid.SVG]. Commands and numbers may be separated by spaces or
// commas. Repeated coordinate groups after a command repeat it, with those
// following M treated as L.
func ParsePath(s string) (*euklid.Path, error) {
	toks := tokenize(s)
	p := euklid.NewPath()
	var cmd byte
	for i := 0; i < len(toks); {
		tok := toks[i]
		if len(tok) == 1 && unicode.IsLetter(rune(tok[0])) {
			cmd = tok[0]
			i++
			if cmd == 'Z' || cmd == 'z' {
				p.ClosePath()
				cmd = 0
				continue
			}
		} else if cmd == 0 {
			return nil, fmt.Errorf("coordinate %q without command", tok)
		}

		var n int
		switch cmd {
		case 'M', 'L':
			n = 1
		case 'Q':
			n = 2
		case 'C':
			n = 3
		default:
			return nil, fmt.Errorf("unsupported command %q", cmd)
		}
		if i+2*n > len(toks) {
			return nil, fmt.Errorf("command %c needs %d coordinates", cmd, 2*n)
		}
		var pts [3]euklid.Point
		for j := range n {
			x, err := strconv.ParseFloat(toks[i+2*j], 64)
			if err != nil {
				return nil, err
			}
			y, err := strconv.ParseFloat(toks[i+2*j+1], 64)
			if err != nil {
				return nil, err
			}
			pts[j] = euklid.Pt(x, y)
		}
		i += 2 * n

		switch cmd {
		case 'M':
			p.MoveTo(pts[0])
			cmd = 'L'
		case 'L':
			p.LineTo(pts[0])
		case 'Q':
			p.QuadTo(pts[0], pts[1])
		case 'C':
			p.CubicTo(pts[0], pts[1], pts[2])
		}
	}
	if p.Len() > 0 && p.Elements[0].Kind != euklid.SegMoveTo {
		return nil, fmt.Errorf("path must start with M")
	}
	return p, nil
}

// tokenize splits s into command letters and numbers.
func tokenize(s string) []string {
	var toks []string
	start := -1
	flush := func(i int) {
		if start >= 0 {
			toks = append(toks, s[start:i])
			start = -1
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r':
			flush(i)
		case unicode.IsLetter(rune(c)) && c != 'e' && c != 'E':
			flush(i)
			toks = append(toks, s[i:i+1])
		case c == '-' && start >= 0 && s[i-1] != 'e' && s[i-1] != 'E':
			// A minus sign starts a new number, as in "1-2".
			flush(i)
			start = i
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(s))
	return toks
}
