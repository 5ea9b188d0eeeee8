// Command euklid flattens and hit-tests the shapes of a scene file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"honnef.co/go/euklid"
	"honnef.co/go/euklid/internal/scene"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "euklid"
	app.Usage = "Flatten and hit-test 2D shapes"
	app.Description = `euklid reads a scene of named shapes from a YAML or TOML file and either prints their flattened outlines as SVG paths or tests points and rectangles against them`
	app.Writer = stdout
	app.ErrWriter = stderr
	app.HideHelpCommand = true
	// Points and rectangles contain commas themselves.
	app.DisableSliceFlagSeparator = true

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log debug information to stderr",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			euklid.SetLogger(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		return nil
	}
	app.After = func(c *cli.Context) error {
		euklid.SetLogger(nil)
		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:      "flatten",
			Usage:     "Print the flattened outline of every shape as an SVG path",
			ArgsUsage: "<scene>",
			Flags: []cli.Flag{
				&cli.Float64Flag{
					Name:  "flatness",
					Usage: "Maximum distance between curves and their approximation (default: from the scene, or 0.1)",
				},
				&cli.IntFlag{
					Name:  "limit",
					Usage: "Maximum number of subdivisions per curve (default: from the scene, or 16)",
				},
				&cli.IntFlag{
					Name:  "precision",
					Usage: "Maximum number of decimal places in the output (0 for exact output)",
				},
			},
			Action: runFlatten,
		},
		{
			Name:      "hit",
			Usage:     "Test points and rectangles against every shape",
			ArgsUsage: "<scene>",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:  "point",
					Usage: "Point to test, as x,y",
				},
				&cli.StringSliceFlag{
					Name:  "rect",
					Usage: "Rectangle to test, as x0,y0,x1,y1",
				},
			},
			Action: runHit,
		},
	}
	return app
}

func loadScene(c *cli.Context) (*scene.Scene, error) {
	args := c.Args().Slice()
	if len(args) == 0 {
		return nil, errors.New("provide a scene file")
	} else if len(args) != 1 {
		return nil, errors.New("only a single scene file can be processed at a time")
	}
	return scene.Load(args[0])
}

func runFlatten(c *cli.Context) error {
	sc, err := loadScene(c)
	if err != nil {
		return err
	}
	opts := sc.FlattenOptions()
	if c.IsSet("flatness") {
		opts.Flatness = c.Float64("flatness")
	}
	if c.IsSet("limit") {
		opts.Limit = c.Int("limit")
	}
	svgOpts := euklid.SVGOptions{MaxPrecision: c.Int("precision")}

	w := c.App.Writer
	for i, s := range sc.Shapes {
		sh, err := s.Shape()
		if err != nil {
			return err
		}
		fit, err := euklid.FlattenShape(sh, nil, opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: ", s.Label(i))
		if err := euklid.WriteSVG(w, euklid.Elements(fit), svgOpts); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

func runHit(c *cli.Context) error {
	sc, err := loadScene(c)
	if err != nil {
		return err
	}
	var points []euklid.Point
	for _, s := range c.StringSlice("point") {
		v, err := parseFloats(s, 2)
		if err != nil {
			return fmt.Errorf("invalid point %q: %w", s, err)
		}
		points = append(points, euklid.Pt(v[0], v[1]))
	}
	var rects []euklid.Rect
	for _, s := range c.StringSlice("rect") {
		v, err := parseFloats(s, 4)
		if err != nil {
			return fmt.Errorf("invalid rectangle %q: %w", s, err)
		}
		rects = append(rects, euklid.Rect{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3]})
	}
	if len(points) == 0 && len(rects) == 0 {
		return errors.New("provide at least one --point or --rect")
	}

	w := c.App.Writer
	for i, s := range sc.Shapes {
		sh, err := s.Shape()
		if err != nil {
			return err
		}
		name := s.Label(i)
		for _, pt := range points {
			n := euklid.Crossings(sh.PathIterator(nil), pt)
			fmt.Fprintf(w, "%s %s: contains=%t crossings=%d\n", name, pt, euklid.Contains(sh, pt), n)
		}
		for _, r := range rects {
			it := sh.PathIterator(nil)
			rule := it.WindingRule()
			rc := euklid.RectCrossings(it, r)
			fmt.Fprintf(w, "%s [%g,%g,%g,%g]: %s contains=%t intersects=%t\n",
				name, r.X0, r.Y0, r.X1, r.Y1, rc.Containment(rule), euklid.ContainsRect(sh, r), euklid.Intersects(sh, r))
		}
	}
	return nil
}

// parseFloats parses exactly n comma-separated numbers.
func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("need %d comma-separated numbers, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
