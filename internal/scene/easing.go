package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"honnef.co/go/tween"
)

// ErrUnknownEasing is returned for easing names that ParseEasing doesn't
// recognize.
var ErrUnknownEasing = errors.New("unknown easing")

var easings = map[string]tween.Easing{
	"linear":           tween.Linear,
	"none":             tween.Jump,
	"quadratic-in":     tween.QuadraticIn,
	"quadratic-out":    tween.QuadraticOut,
	"quadratic-in-out": tween.QuadraticInOut,
	"cubic-in":         tween.CubicIn,
	"cubic-out":        tween.CubicOut,
	"cubic-in-out":     tween.CubicInOut,
	"quartic-in":       tween.QuarticIn,
	"quartic-out":      tween.QuarticOut,
	"quartic-in-out":   tween.QuarticInOut,
	"sine-in":          tween.SineIn,
	"sine-out":         tween.SineOut,
	"sine-in-out":      tween.SineInOut,

	// The keywords of CSS timing functions.
	"ease":        tween.CubicBezier(0.25, 0.1, 0.25, 1),
	"ease-in":     tween.CubicBezier(0.42, 0, 1, 1),
	"ease-out":    tween.CubicBezier(0, 0, 0.58, 1),
	"ease-in-out": tween.CubicBezier(0.42, 0, 0.58, 1),
}

// ParseEasing returns the easing with the given name. Besides the named
// curves it accepts the CSS notations "steps(n)" and
// "cubic-bezier(x1, y1, x2, y2)".
func ParseEasing(name string) (tween.Easing, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if e, ok := easings[s]; ok {
		return e, nil
	}

	if args, ok := call(s, "steps"); ok {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %q takes one argument", ErrUnknownEasing, name)
		}
		n, err := cast.ToIntE(args[0])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %q needs a positive number of steps", ErrUnknownEasing, name)
		}
		return tween.Step(n), nil
	}

	if args, ok := call(s, "cubic-bezier"); ok {
		if len(args) != 4 {
			return nil, fmt.Errorf("%w: %q takes four arguments", ErrUnknownEasing, name)
		}
		var v [4]float64
		for i, arg := range args {
			f, err := cast.ToFloat64E(arg)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrUnknownEasing, name, err)
			}
			v[i] = f
		}
		if v[0] < 0 || v[0] > 1 || v[2] < 0 || v[2] > 1 {
			return nil, fmt.Errorf("%w: %q: x coordinates must be in [0, 1]", ErrUnknownEasing, name)
		}
		return tween.CubicBezier(v[0], v[1], v[2], v[3]), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
}

// call splits "fn(a, b)" into its arguments if s calls fn.
func call(s, fn string) ([]string, bool) {
	rest, ok := strings.CutPrefix(s, fn+"(")
	if !ok {
		return nil, false
	}
	rest, ok = strings.CutSuffix(rest, ")")
	if !ok {
		return nil, false
	}
	args := strings.Split(rest, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, true
}
