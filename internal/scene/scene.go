// Package scene loads collections of named shapes from YAML or TOML files.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/math/f64"
	"gopkg.in/yaml.v3"

	"honnef.co/go/euklid"
)

var (
	ErrUnknownFormat = errors.New("unknown scene format")
	ErrInvalidShape  = errors.New("invalid shape")
)

// Format is the encoding of a scene file.
type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "YAML"
	case TOML:
		return "TOML"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf returns the format of a file, based on its extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Scene is a set of shapes, together with the flattening settings to use for
// them. Zero values select the library defaults; negative ones are rejected.
type Scene struct {
	Flatness float64    `yaml:"flatness" toml:"flatness"`
	Limit    int        `yaml:"limit" toml:"limit"`
	Shapes   []ShapeDef `yaml:"shapes" toml:"shapes"`
}

// ShapeDef describes one shape. The meaning of Coords depends on Kind:
//
//	rect     x0, y0, x1, y1
//	circle   cx, cy (with Radius)
//	ellipse  x, y, width, height
//	line     x0, y0, x1, y1
//	quad     x0, y0, x1, y1, x2, y2
//	cubic    x0, y0, x1, y1, x2, y2, x3, y3
//
// Shapes of kind "path" use Path instead, a string of absolute SVG path
// commands.
type ShapeDef struct {
	Name   string    `yaml:"name" toml:"name"`
	Kind   string    `yaml:"kind" toml:"kind"`
	Coords []float64 `yaml:"coords" toml:"coords"`
	Radius float64   `yaml:"radius" toml:"radius"`
	Path   string    `yaml:"path" toml:"path"`
	// Rule is the winding rule of paths, "nonzero" or "evenodd".
	Rule string `yaml:"rule" toml:"rule"`
	// Transform holds the six coefficients of an affine transform applied to
	// the shape, in the order of [euklid.Affine].
	Transform []float64 `yaml:"transform" toml:"transform"`
	// Matrix is an alternative to Transform that holds the first two rows of
	// the transform matrix, row by row, as in golang.org/x/image's f64.Aff3.
	Matrix []float64 `yaml:"matrix" toml:"matrix"`
}

// Load reads a scene file, choosing the decoder by the file's extension.
func Load(name string) (*Scene, error) {
	f, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	sc, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return sc, nil
}

// Decode reads a scene in the given format. Unknown fields are rejected.
func Decode(r io.Reader, f Format) (*Scene, error) {
	var sc Scene
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding YAML: %w", err)
		}
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&sc); err != nil {
			return nil, fmt.Errorf("decoding TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err := sc.FlattenOptions().Validate(); err != nil {
		return nil, err
	}
	for i, s := range sc.Shapes {
		if _, err := s.Shape(); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return &sc, nil
}

// FlattenOptions returns the flattening options of the scene, filling in
// defaults for unset values. Invalid values are passed through for
// [euklid.FlattenOptions.Validate] to report.
func (sc *Scene) FlattenOptions() euklid.FlattenOptions {
	opts := euklid.DefaultFlattenOptions
	if sc.Flatness != 0 {
		opts.Flatness = sc.Flatness
	}
	if sc.Limit != 0 {
		opts.Limit = sc.Limit
	}
	return opts
}

// Label returns the shape's name, or a name derived from its kind and index.
func (s ShapeDef) Label(i int) string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("%s#%d", s.Kind, i)
}

// Shape builds the shape. Transformed shapes are returned as paths.
func (s ShapeDef) Shape() (euklid.Shape, error) {
	sh, err := s.untransformed()
	if err != nil {
		return nil, err
	}
	aff, ok, err := s.affine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return sh, nil
	}
	if p, ok := sh.(*euklid.Path); ok {
		return p.Transform(aff), nil
	}
	return euklid.CollectPath(sh.PathIterator(aff)), nil
}

// affine returns the shape's transform. ok is false if it has none.
func (s ShapeDef) affine() (aff euklid.Affine, ok bool, err error) {
	switch {
	case s.Transform != nil && s.Matrix != nil:
		return aff, false, fmt.Errorf("%w: %s %q: transform and matrix are mutually exclusive",
			ErrInvalidShape, s.Kind, s.Name)
	case s.Transform != nil:
		if len(s.Transform) != 6 {
			return aff, false, fmt.Errorf("%w: %s %q: transform needs 6 coefficients, got %d",
				ErrInvalidShape, s.Kind, s.Name, len(s.Transform))
		}
		return euklid.NewAffine([6]float64(s.Transform)), true, nil
	case s.Matrix != nil:
		if len(s.Matrix) != 6 {
			return aff, false, fmt.Errorf("%w: %s %q: matrix needs 6 coefficients, got %d",
				ErrInvalidShape, s.Kind, s.Name, len(s.Matrix))
		}
		return euklid.NewAffineFromAff3(f64.Aff3([6]float64(s.Matrix))), true, nil
	default:
		return aff, false, nil
	}
}

func (s ShapeDef) untransformed() (euklid.Shape, error) {
	want := map[string]int{
		"rect":    4,
		"circle":  2,
		"ellipse": 4,
		"line":    4,
		"quad":    6,
		"cubic":   8,
	}
	if s.Kind == "path" {
		p, err := ParsePath(s.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: path %q: %w", ErrInvalidShape, s.Name, err)
		}
		switch strings.ToLower(s.Rule) {
		case "", "nonzero":
			p.Rule = euklid.NonZero
		case "evenodd":
			p.Rule = euklid.EvenOdd
		default:
			return nil, fmt.Errorf("%w: path %q: unknown winding rule %q", ErrInvalidShape, s.Name, s.Rule)
		}
		return p, nil
	}
	n, ok := want[s.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidShape, s.Kind)
	}
	if len(s.Coords) != n {
		return nil, fmt.Errorf("%w: %s %q: need %d coordinates, got %d",
			ErrInvalidShape, s.Kind, s.Name, n, len(s.Coords))
	}
	c := s.Coords
	pt := func(i int) euklid.Point { return euklid.Pt(c[2*i], c[2*i+1]) }
	switch s.Kind {
	case "rect":
		return euklid.Rect{X0: c[0], Y0: c[1], X1: c[2], Y1: c[3]}, nil
	case "circle":
		return euklid.Circle{Center: pt(0), Radius: s.Radius}, nil
	case "ellipse":
		return euklid.Ellipse{X: c[0], Y: c[1], Width: c[2], Height: c[3]}, nil
	case "line":
		return euklid.Line{P0: pt(0), P1: pt(1)}, nil
	case "quad":
		return euklid.QuadBez{P0: pt(0), P1: pt(1), P2: pt(2)}, nil
	case "cubic":
		return euklid.CubicBez{P0: pt(0), P1: pt(1), P2: pt(2), P3: pt(3)}, nil
	default:
		panic("unreachable")
	}
}
