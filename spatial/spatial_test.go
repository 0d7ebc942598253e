package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/tween"
)

func assertVec3(t *testing.T, want, got r3.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "X")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "Y")
	assert.InDelta(t, want.Z, got.Z, 1e-9, "Z")
}

func TestVec2(t *testing.T) {
	a := Vec2{X: 0.1, Y: 0.7}
	b := Vec2{X: 3, Y: -4}
	assert.Equal(t, a, a.Mix(b, 0))
	assert.Equal(t, b, a.Mix(b, 1))
	mid := a.Mix(b, 0.5)
	assert.InDelta(t, 1.55, mid.X, 1e-12)
	assert.InDelta(t, -1.65, mid.Y, 1e-12)
	assert.Equal(t, 5.0, Vec2{}.Distance(b))
}

func TestVec3Path(t *testing.T) {
	path := tween.NewPathBuilder(Vec3{}).
		LineTo(Vec3{X: 2}).
		LineTo(Vec3{X: 2, Y: 2.4, Z: 1.8}).
		Build()
	assert.InDelta(t, 5.0, path.Length(), 1e-9)

	got := path.ValueAt(0.2)
	assertVec3(t, r3.Vec{X: 1}, r3.Vec(got))
	got = path.ValueAt(0.7)
	assertVec3(t, r3.Vec{X: 2, Y: 1.2, Z: 0.9}, r3.Vec(got))
}

func TestRotation(t *testing.T) {
	z := r3.Vec{Z: 1}
	quarter := AxisAngle(z, math.Pi/2)
	assertVec3(t, r3.Vec{Y: 1}, quarter.Rotate(r3.Vec{X: 1}))
	assertVec3(t, r3.Vec{X: 1}, Identity().Rotate(r3.Vec{X: 1}))

	assert.InDelta(t, math.Pi/2, Identity().Distance(quarter), 1e-9)

	// Halfway between no rotation and a quarter turn is an eighth turn.
	eighth := Identity().Mix(quarter, 0.5)
	assert.InDelta(t, 1, quat.Abs(eighth.Quat()), 1e-12)
	assertVec3(t, r3.Vec{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, eighth.Rotate(r3.Vec{X: 1}))
}

func TestRotationShortArc(t *testing.T) {
	z := r3.Vec{Z: 1}
	a := AxisAngle(z, 0.1)
	// The same rotation as a, with the opposite sign.
	b := FromQuat(quat.Scale(-1, AxisAngle(z, 0.3).Quat()))

	assert.InDelta(t, 0.2, a.Distance(b), 1e-9)
	mid := a.Mix(b, 0.5)
	assert.InDelta(t, 0.1, a.Distance(mid), 1e-9)
	require.Equal(t, b, a.Mix(b, 1))
}

func TestRotationTimeline(t *testing.T) {
	z := r3.Vec{Z: 1}
	tl := tween.From[Rotation, tween.Seconds](Identity()).
		GoTo(AxisAngle(z, math.Pi), 2)
	r := tl.Get(1)
	assertVec3(t, r3.Vec{Y: 1}, r.Rotate(r3.Vec{X: 1}))
}
