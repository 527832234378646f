// Package config describes curve charts in TOML or YAML files and builds
// them.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/curveaxis"
)

var (
	ErrUnknownKind   = errors.New("unknown chart kind")
	ErrUnknownFormat = errors.New("unknown config format")
)

// Format is the encoding of a config file.
type Format int

const (
	TOML Format = iota
	YAML
)

// Chart kinds.
const (
	KindSerpentine = "serpentine"
	KindSpiral     = "spiral"
	KindCurve      = "curve"
)

// File is the contents of a chart config file.
type File struct {
	Kind   string  `toml:"kind" yaml:"kind"`
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
	Margin float64 `toml:"margin" yaml:"margin"`

	Serpentine Serpentine `toml:"serpentine" yaml:"serpentine"`
	Spiral     Spiral     `toml:"spiral" yaml:"spiral"`
	Curve      Curve      `toml:"curve" yaml:"curve"`

	Axes   Axes     `toml:"axes" yaml:"axes"`
	Series []Series `toml:"series" yaml:"series"`
	Colors Colors   `toml:"colors" yaml:"colors"`
}

type Serpentine struct {
	LevelCount    int                   `toml:"level_count" yaml:"level_count"`
	Orientation   curveaxis.Orientation `toml:"orientation" yaml:"orientation"`
	StartLocation float64               `toml:"start_location" yaml:"start_location"`
	EndLocation   float64               `toml:"end_location" yaml:"end_location"`
	YAxisRadius   float64               `toml:"y_axis_radius" yaml:"y_axis_radius"`
}

type Spiral struct {
	LevelCount  int     `toml:"level_count" yaml:"level_count"`
	InnerRadius float64 `toml:"inner_radius" yaml:"inner_radius"`
	StartAngle  float64 `toml:"start_angle" yaml:"start_angle"`
	EndAngle    float64 `toml:"end_angle" yaml:"end_angle"`
	YAxisRadius float64 `toml:"y_axis_radius" yaml:"y_axis_radius"`
}

// Curve is an arbitrary path, given as x, y pairs.
type Curve struct {
	Points [][]float64 `toml:"points" yaml:"points"`
	// YLength is the width of the plot ribbon in the points' units.
	YLength float64 `toml:"y_length" yaml:"y_length"`
}

// Axis is the zoom window, grid and value range of one axis.
type Axis struct {
	Start     float64 `toml:"start" yaml:"start"`
	End       float64 `toml:"end" yaml:"end"`
	Inversed  bool    `toml:"inversed" yaml:"inversed"`
	Divisions int     `toml:"divisions" yaml:"divisions"`
	Min       float64 `toml:"min" yaml:"min"`
	Max       float64 `toml:"max" yaml:"max"`
}

type Axes struct {
	X          Axis    `toml:"x" yaml:"x"`
	Y          Axis    `toml:"y" yaml:"y"`
	TickLength float64 `toml:"tick_length" yaml:"tick_length"`
	Labels     bool    `toml:"labels" yaml:"labels"`
}

// Series is a line or a column series. Values are x, y pairs for lines and
// x0, x1, y0, y1 tuples for columns, in the axes' value ranges.
type Series struct {
	Type   string      `toml:"type" yaml:"type"`
	Color  string      `toml:"color" yaml:"color"`
	Width  float64     `toml:"width" yaml:"width"`
	Values [][]float64 `toml:"values" yaml:"values"`
}

type Colors struct {
	Background string `toml:"background" yaml:"background"`
	Axis       string `toml:"axis" yaml:"axis"`
	Grid       string `toml:"grid" yaml:"grid"`
	Fill       string `toml:"fill" yaml:"fill"`
	Series     string `toml:"series" yaml:"series"`
	Text       string `toml:"text" yaml:"text"`
}

// Default returns the settings a config file starts from.
func Default() File {
	return File{
		Kind:   KindSerpentine,
		Width:  600,
		Height: 400,
		Margin: 20,
		Serpentine: Serpentine{
			LevelCount:  3,
			EndLocation: 1,
			YAxisRadius: 0.8,
		},
		Spiral: Spiral{
			LevelCount:  3,
			EndAngle:    360,
			YAxisRadius: 0.8,
		},
		Axes: Axes{
			X:          Axis{End: 1, Divisions: 10, Max: 1},
			Y:          Axis{End: 1, Divisions: 2, Max: 1},
			TickLength: 4,
			Labels:     true,
		},
		Colors: Colors{
			Background: "#ffffff",
			Axis:       "#333333",
			Grid:       "#d0d0d0",
			Fill:       "#f2f2f2",
			Series:     "#3366cc",
			Text:       "#333333",
		},
	}
}

// FormatFor picks the format from a file name's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads and validates a config file.
func Load(path string) (*File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a config in the given format over the defaults and validates
// it. Unknown keys are errors.
func Decode(r io.Reader, format Format) (*File, error) {
	cfg := Default()
	switch format {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decoding TOML: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the settings describe a chart that can be built.
func (f *File) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	switch f.Kind {
	case KindSerpentine:
		check(f.Serpentine.LevelCount >= 1, "serpentine level_count must be at least 1, got %d", f.Serpentine.LevelCount)
		check(f.Serpentine.StartLocation >= 0 && f.Serpentine.StartLocation <= 1,
			"serpentine start_location must be in [0, 1], got %g", f.Serpentine.StartLocation)
		check(f.Serpentine.EndLocation >= 0 && f.Serpentine.EndLocation <= 1,
			"serpentine end_location must be in [0, 1], got %g", f.Serpentine.EndLocation)
	case KindSpiral:
		check(f.Spiral.LevelCount >= 1, "spiral level_count must be at least 1, got %d", f.Spiral.LevelCount)
		check(f.Spiral.InnerRadius >= 0 && f.Spiral.InnerRadius < 1,
			"spiral inner_radius must be in [0, 1), got %g", f.Spiral.InnerRadius)
	case KindCurve:
		check(len(f.Curve.Points) >= 2, "curve needs at least 2 points, got %d", len(f.Curve.Points))
		for _, p := range f.Curve.Points {
			check(len(p) == 2, "curve points are x, y pairs, got %v", p)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind))
	}

	check(f.Width > 0 && f.Height > 0, "size must be positive, got %g×%g", f.Width, f.Height)
	check(f.Margin >= 0, "margin must not be negative, got %g", f.Margin)
	for _, ax := range []struct {
		name string
		Axis
	}{{"x", f.Axes.X}, {"y", f.Axes.Y}} {
		check(ax.Start >= 0 && ax.End <= 1 && ax.Start < ax.End,
			"%s axis window [%g, %g] must lie in [0, 1]", ax.name, ax.Start, ax.End)
		check(ax.Divisions >= 0, "%s axis divisions must not be negative", ax.name)
	}
	for i, s := range f.Series {
		switch s.Type {
		case "line":
			for _, v := range s.Values {
				check(len(v) == 2, "series %d: line values are x, y pairs, got %v", i, v)
			}
		case "column":
			for _, v := range s.Values {
				check(len(v) == 4, "series %d: column values are x0, x1, y0, y1, got %v", i, v)
			}
		default:
			errs = append(errs, fmt.Errorf("series %d: unknown type %q", i, s.Type))
		}
	}
	return errors.Join(errs...)
}
