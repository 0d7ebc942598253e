// Package spatial lets vectors and rotations from gonum's spatial packages
// be animated with package tween.
package spatial

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/tween"
)

var (
	_ tween.Measurable[Vec2]     = Vec2{}
	_ tween.Measurable[Vec3]     = Vec3{}
	_ tween.Measurable[Rotation] = Rotation{}
)

// Vec2 is an [r2.Vec] that implements [tween.Measurable].
type Vec2 r2.Vec

func (v Vec2) Mix(o Vec2, t float64) Vec2 {
	switch t {
	case 0:
		return v
	case 1:
		return o
	}
	a, b := r2.Vec(v), r2.Vec(o)
	return Vec2(r2.Add(a, r2.Scale(t, r2.Sub(b, a))))
}

func (v Vec2) Distance(o Vec2) float64 {
	return r2.Norm(r2.Sub(r2.Vec(v), r2.Vec(o)))
}

// Vec3 is an [r3.Vec] that implements [tween.Measurable].
type Vec3 r3.Vec

func (v Vec3) Mix(o Vec3, t float64) Vec3 {
	switch t {
	case 0:
		return v
	case 1:
		return o
	}
	a, b := r3.Vec(v), r3.Vec(o)
	return Vec3(r3.Add(a, r3.Scale(t, r3.Sub(b, a))))
}

func (v Vec3) Distance(o Vec3) float64 {
	return r3.Norm(r3.Sub(r3.Vec(v), r3.Vec(o)))
}

// Rotation is a rotation in 3D space, represented as a unit quaternion.
// Rotations are mixed with spherical linear interpolation, which rotates at
// constant angular speed along the shortest arc.
//
// The zero value is not a valid rotation; use [Identity].
type Rotation quat.Number

// Identity returns the rotation that leaves vectors unchanged.
func Identity() Rotation {
	return Rotation{Real: 1}
}

// AxisAngle returns the rotation by angle radians around axis. The axis
// needn't be normalized, but mustn't be zero.
func AxisAngle(axis r3.Vec, angle float64) Rotation {
	u := r3.Unit(axis)
	s, c := math.Sincos(angle / 2)
	return Rotation{Real: c, Imag: s * u.X, Jmag: s * u.Y, Kmag: s * u.Z}
}

// FromQuat returns the rotation described by q, normalizing it first.
func FromQuat(q quat.Number) Rotation {
	return Rotation(quat.Scale(1/quat.Abs(q), q))
}

// Quat returns the rotation as a quaternion.
func (r Rotation) Quat() quat.Number { return quat.Number(r) }

// Rotate applies the rotation to v.
func (r Rotation) Rotate(v r3.Vec) r3.Vec {
	q := quat.Number(r)
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	p = quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vec{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}

func dot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

func (r Rotation) Mix(o Rotation, t float64) Rotation {
	switch t {
	case 0:
		return r
	case 1:
		return o
	}
	a, b := quat.Number(r), quat.Number(o)
	d := dot(a, b)
	// q and −q describe the same rotation. Pick the one on the short arc.
	if d < 0 {
		b = quat.Scale(-1, b)
		d = -d
	}
	if d > 0.9995 {
		// The angle is too small for the sines below to be accurate.
		return FromQuat(quat.Add(a, quat.Scale(t, quat.Sub(b, a))))
	}
	theta := math.Acos(d)
	s := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / s
	wb := math.Sin(t*theta) / s
	return Rotation(quat.Add(quat.Scale(wa, a), quat.Scale(wb, b)))
}

// Distance returns the angle in radians of the rotation that takes r to o.
func (r Rotation) Distance(o Rotation) float64 {
	d := math.Abs(dot(quat.Number(r), quat.Number(o)))
	return 2 * math.Acos(min(d, 1))
}
