// Package scene reads the YAML scene files that describe what tweenview
// animates.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"honnef.co/go/tween"
	"honnef.co/go/tween/palette"
)

const (
	defaultDuration       = time.Second
	defaultEasing         = "quadratic-in-out"
	defaultFollowDuration = 500 * time.Millisecond
	defaultColor          = "#ffffff"
)

// Scene describes a marker that travels along a path while cycling through
// colors, and a cursor that follows user input.
type Scene struct {
	// Duration is the time spent on each leg of the path and on each color.
	Duration time.Duration
	Easing   tween.Easing
	// Path is the polyline the marker follows. It has at least one point.
	Path []tween.Point
	// Repeat makes the marker go back and forth forever.
	Repeat bool
	// Colors has at least one color.
	Colors []palette.Color
	Follow Follow
}

// Follow configures the inertial cursor.
type Follow struct {
	Duration time.Duration
	Easing   tween.Easing
}

type rawScene struct {
	Duration any       `yaml:"duration"`
	Easing   string    `yaml:"easing"`
	Path     [][]any   `yaml:"path"`
	Repeat   bool      `yaml:"repeat"`
	Colors   []string  `yaml:"colors"`
	Follow   rawFollow `yaml:"follow"`
}

type rawFollow struct {
	Duration any    `yaml:"duration"`
	Easing   string `yaml:"easing"`
}

// Load reads the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't load scene: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse parses a scene. Unknown keys are an error. Missing keys other than
// path get default values.
func Parse(data []byte) (*Scene, error) {
	var raw rawScene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("couldn't parse scene: %w", err)
	}

	var sc Scene
	var err error
	if sc.Duration, err = parseDuration(raw.Duration, defaultDuration); err != nil {
		return nil, fmt.Errorf("duration: %w", err)
	}
	if sc.Easing, err = parseEasing(raw.Easing); err != nil {
		return nil, fmt.Errorf("easing: %w", err)
	}
	if sc.Follow.Duration, err = parseDuration(raw.Follow.Duration, defaultFollowDuration); err != nil {
		return nil, fmt.Errorf("follow.duration: %w", err)
	}
	if sc.Follow.Easing, err = parseEasing(raw.Follow.Easing); err != nil {
		return nil, fmt.Errorf("follow.easing: %w", err)
	}
	sc.Repeat = raw.Repeat

	if len(raw.Path) == 0 {
		return nil, errors.New("path: need at least one point")
	}
	for i, coords := range raw.Path {
		pt, err := parsePoint(coords)
		if err != nil {
			return nil, fmt.Errorf("path[%d]: %w", i, err)
		}
		sc.Path = append(sc.Path, pt)
	}

	colors := raw.Colors
	if len(colors) == 0 {
		colors = []string{defaultColor}
	}
	for i, s := range colors {
		c, err := palette.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("colors[%d]: %w", i, err)
		}
		sc.Colors = append(sc.Colors, c)
	}

	return &sc, nil
}

// parseDuration accepts Go duration strings such as "1.5s" and plain
// numbers of seconds.
func parseDuration(v any, def time.Duration) (time.Duration, error) {
	if v == nil {
		return def, nil
	}
	d, err := toDuration(v)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %v", d)
	}
	return d, nil
}

func toDuration(v any) (time.Duration, error) {
	if s, ok := v.(string); ok {
		if d, err := time.ParseDuration(s); err == nil {
			return d, nil
		}
	}
	secs, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %v", v)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func parseEasing(name string) (tween.Easing, error) {
	if name == "" {
		name = defaultEasing
	}
	return ParseEasing(name)
}

func parsePoint(coords []any) (tween.Point, error) {
	if len(coords) != 2 {
		return tween.Point{}, fmt.Errorf("want 2 coordinates, got %d", len(coords))
	}
	x, err := cast.ToFloat64E(coords[0])
	if err != nil {
		return tween.Point{}, err
	}
	y, err := cast.ToFloat64E(coords[1])
	if err != nil {
		return tween.Point{}, err
	}
	return tween.Pt(x, y), nil
}

// Legs returns the number of legs of the path.
func (sc *Scene) Legs() int {
	return len(sc.Path) - 1
}

// Timeline returns the movement of the marker. The marker moves at constant
// speed, taking Duration per leg. If the scene repeats, the timeline is
// infinite.
func (sc *Scene) Timeline() tween.Timeline[tween.Point, tween.Span] {
	start := tween.From[tween.Point, tween.Span](sc.Path[0])
	var tl tween.Timeline[tween.Point, tween.Span]
	if sc.Legs() == 0 {
		tl = start.Stay(tween.SpanOf(sc.Duration))
	} else {
		length := tween.SpanOf(sc.Duration * time.Duration(sc.Legs()))
		tl = tween.PolyTo(start, sc.Path[1:], length, sc.Easing)
	}
	if sc.Repeat {
		tl = tl.Then(tl.Reverse()).Repeat()
	}
	return tl
}

// ColorTimeline returns the colors of the marker. The marker goes through all
// colors and back to the first, taking Duration per color. If the scene
// repeats, the timeline is infinite.
func (sc *Scene) ColorTimeline() tween.Timeline[palette.Color, tween.Span] {
	d := tween.SpanOf(sc.Duration)
	tl := tween.From[palette.Color, tween.Span](sc.Colors[0])
	if len(sc.Colors) == 1 {
		tl = tl.Stay(d)
	} else {
		for _, c := range sc.Colors[1:] {
			tl = tl.EaseTo(c, d, sc.Easing)
		}
		tl = tl.EaseTo(sc.Colors[0], d, sc.Easing)
	}
	if sc.Repeat {
		tl = tl.Repeat()
	}
	return tl
}

// Cursor returns a resting cursor at pt.
func (sc *Scene) Cursor(pt tween.Point) tween.Inertial[tween.Point, tween.Instant, tween.Span] {
	return tween.NewInertial[tween.Point, tween.Instant, tween.Span](pt)
}

// MoveCursor sends the cursor to pt at now, as configured by Follow.
func (sc *Scene) MoveCursor(
	cur tween.Inertial[tween.Point, tween.Instant, tween.Span],
	pt tween.Point,
	now tween.Instant,
) tween.Inertial[tween.Point, tween.Instant, tween.Span] {
	return cur.EaseTo(pt, now, tween.SpanOf(sc.Follow.Duration), sc.Follow.Easing)
}
