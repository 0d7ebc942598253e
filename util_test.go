package tween

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares float64 values, including those nested in structs, with
// an absolute tolerance of 1e-9. It doesn't apply to named float types such
// as F64; use near for those.
var approx = cmpopts.EquateApprox(0, 1e-9)

func near[T ~float64](t *testing.T, want, got T) {
	t.Helper()
	if math.Abs(float64(want-got)) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

// coarse is for values read back through a path's arc length table near a
// corner, where the table's resolution limits the precision.
var coarse = cmpopts.EquateApprox(0, 1e-2)
