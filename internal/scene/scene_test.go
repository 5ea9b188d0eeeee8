package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/euklid"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

const sceneYAML = `
flatness: 0.05
limit: 12
shapes:
  - name: box
    kind: rect
    coords: [0, 0, 10, 5]
  - name: disc
    kind: circle
    coords: [20, 20]
    radius: 4
  - name: donut
    kind: path
    rule: evenodd
    path: "M0,0 L4,0 L4,4 L0,4 Z M1,1 L3,1 L3,3 L1,3 Z"
  - kind: quad
    coords: [0, 0, 1, 1, 2, 0]
    transform: [1, 0, 0, 1, 100, 0]
`

const sceneTOML = `
flatness = 0.05
limit = 12

[[shapes]]
name = "box"
kind = "rect"
coords = [0.0, 0.0, 10.0, 5.0]

[[shapes]]
name = "disc"
kind = "circle"
coords = [20.0, 20.0]
radius = 4.0

[[shapes]]
name = "donut"
kind = "path"
rule = "evenodd"
path = "M0,0 L4,0 L4,4 L0,4 Z M1,1 L3,1 L3,3 L1,3 Z"

[[shapes]]
kind = "quad"
coords = [0.0, 0.0, 1.0, 1.0, 2.0, 0.0]
transform = [1.0, 0.0, 0.0, 1.0, 100.0, 0.0]
`

func TestDecodeFormatsAgree(t *testing.T) {
	fromYAML, err := Decode(strings.NewReader(sceneYAML), YAML)
	if err != nil {
		t.Fatal(err)
	}
	fromTOML, err := Decode(strings.NewReader(sceneTOML), TOML)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, fromYAML, fromTOML)

	if len(fromYAML.Shapes) != 4 {
		t.Fatalf("got %d shapes, want 4", len(fromYAML.Shapes))
	}
	diff(t, euklid.FlattenOptions{Flatness: 0.05, Limit: 12, InitialCapacity: 16, Growth: 16}, fromYAML.FlattenOptions())
	diff(t, "quad#3", fromYAML.Shapes[3].Label(3))
	diff(t, "box", fromYAML.Shapes[0].Label(0))
}

func TestShapes(t *testing.T) {
	sc, err := Decode(strings.NewReader(sceneYAML), YAML)
	if err != nil {
		t.Fatal(err)
	}
	var shapes []euklid.Shape
	for _, s := range sc.Shapes {
		sh, err := s.Shape()
		if err != nil {
			t.Fatal(err)
		}
		shapes = append(shapes, sh)
	}

	diff(t, euklid.Rect{X0: 0, Y0: 0, X1: 10, Y1: 5}, shapes[0])
	diff(t, euklid.Circle{Center: euklid.Pt(20, 20), Radius: 4}, shapes[1])

	donut := shapes[2].(*euklid.Path)
	if donut.Rule != euklid.EvenOdd {
		t.Errorf("got rule %s, want EvenOdd", donut.Rule)
	}
	if euklid.Contains(donut, euklid.Pt(2, 2)) {
		t.Error("donut contains its hole")
	}
	if !euklid.Contains(donut, euklid.Pt(0.5, 2)) {
		t.Error("donut doesn't contain its ring")
	}

	want := []euklid.PathElement{
		euklid.MoveTo(euklid.Pt(100, 0)),
		euklid.QuadTo(euklid.Pt(101, 1), euklid.Pt(102, 0)),
	}
	diff(t, want, shapes[3].(*euklid.Path).Elements)
}

func TestShapeMatrix(t *testing.T) {
	viaMatrix := ShapeDef{Kind: "rect", Coords: []float64{0, 0, 1, 1}, Matrix: []float64{2, 0, 5, 0, 3, 7}}
	viaTransform := ShapeDef{Kind: "rect", Coords: []float64{0, 0, 1, 1}, Transform: []float64{2, 0, 0, 3, 5, 7}}
	got, err := viaMatrix.Shape()
	if err != nil {
		t.Fatal(err)
	}
	want, err := viaTransform.Shape()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, got)
	diff(t, euklid.Rect{X0: 5, Y0: 7, X1: 7, Y1: 10}, got.BoundingBox())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"unknown kind", "shapes: [{kind: star}]", ErrInvalidShape},
		{"coordinate count", "shapes: [{kind: rect, coords: [1, 2, 3]}]", ErrInvalidShape},
		{"transform", "shapes: [{kind: rect, coords: [0, 0, 1, 1], transform: [1, 0]}]", ErrInvalidShape},
		{"winding rule", `shapes: [{kind: path, path: "M0,0 L1,1", rule: odd}]`, ErrInvalidShape},
		{"bad path", `shapes: [{kind: path, path: "L0,0"}]`, ErrInvalidShape},
		{"unknown field", "shapes: [{kind: rect, colour: red}]", nil},
		{"matrix", "shapes: [{kind: rect, coords: [0, 0, 1, 1], matrix: [1, 0, 0]}]", ErrInvalidShape},
		{"transform and matrix", "shapes: [{kind: rect, coords: [0, 0, 1, 1], transform: [1, 0, 0, 1, 0, 0], matrix: [1, 0, 0, 0, 1, 0]}]", ErrInvalidShape},
		{"negative flatness", "flatness: -1", euklid.ErrInvalidFlatness},
		{"NaN flatness", "flatness: .nan", euklid.ErrInvalidFlatness},
		{"negative limit", "limit: -3", euklid.ErrInvalidLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in), YAML)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("got error %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Decode(strings.NewReader("colour = \"red\""), TOML); err == nil {
		t.Error("expected error for unknown TOML field")
	}
	if _, err := Decode(strings.NewReader("flatness = -0.5"), TOML); !errors.Is(err, euklid.ErrInvalidConfig) {
		t.Errorf("got error %v, want %v", err, euklid.ErrInvalidConfig)
	}
}

func TestFlattenOptions(t *testing.T) {
	sc := &Scene{Flatness: 0.25, Limit: 4}
	want := euklid.DefaultFlattenOptions
	want.Flatness = 0.25
	want.Limit = 4
	diff(t, want, sc.FlattenOptions())

	sc = &Scene{Flatness: -1, Limit: -3}
	opts := sc.FlattenOptions()
	if opts.Flatness != -1 || opts.Limit != -3 {
		t.Errorf("got %+v, want invalid values passed through", opts)
	}
}

func TestDecodeEmpty(t *testing.T) {
	sc, err := Decode(strings.NewReader(""), YAML)
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Shapes) != 0 {
		t.Errorf("got %d shapes, want 0", len(sc.Shapes))
	}
	diff(t, euklid.DefaultFlattenOptions, sc.FlattenOptions())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"scene.yml":  sceneYAML,
		"scene.TOML": sceneTOML,
	} {
		fn := filepath.Join(dir, name)
		if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		sc, err := Load(fn)
		if err != nil {
			t.Fatalf("%s: %s", name, err)
		}
		if len(sc.Shapes) != 4 {
			t.Errorf("%s: got %d shapes, want 4", name, len(sc.Shapes))
		}
	}

	if _, err := Load(filepath.Join(dir, "scene.json")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("got error %v, want ErrUnknownFormat", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got error %v, want os.ErrNotExist", err)
	}
}
