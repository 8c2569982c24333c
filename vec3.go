package easel

import (
	"fmt"
	"math"
)

// Vector3 is a coordinate in 3D space. Positions on the sphere are unit vectors from its center.
type Vector3 struct {
	X, Y, Z float64
}

// IsZero returns true if V is exactly zero.
func (v Vector3) IsZero() bool {
	return v.X == 0.0 && v.Y == 0.0 && v.Z == 0.0
}

// Equals returns true if V and W are equal with tolerance Epsilon.
func (v Vector3) Equals(w Vector3) bool {
	return Equal(v.X, w.X) && Equal(v.Y, w.Y) && Equal(v.Z, w.Z)
}

// Neg negates x, y, and z, ie. the antipode for a point on the sphere.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Add adds W to V.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub subtracts W from V.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Mul multiplies x, y, and z by f.
func (v Vector3) Mul(f float64) Vector3 {
	return Vector3{f * v.X, f * v.Y, f * v.Z}
}

// Dot returns the dot product between V and W.
func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product between V and W.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length of V.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns V scaled to unit length, or zero when V is (nearly) zero.
func (v Vector3) Normalize() Vector3 {
	d := v.Length()
	if Equal(d, 0.0) {
		return Vector3{}
	}
	return Vector3{v.X / d, v.Y / d, v.Z / d}
}

// AngleTo returns the angle in radians between V and W in the range [0,PI]. It is numerically stable for small and nearly opposite angles.
func (v Vector3) AngleTo(w Vector3) float64 {
	return math.Atan2(v.Cross(w).Length(), v.Dot(w))
}

// RotateAround rotates V by angle radians counter clockwise around the given axis, which must be a unit vector. This is Rodrigues' rotation formula.
func (v Vector3) RotateAround(axis Vector3, angle float64) Vector3 {
	sintheta, costheta := math.Sincos(angle)
	k := axis.Cross(v)
	return v.Mul(costheta).Add(k.Mul(sintheta)).Add(axis.Mul(axis.Dot(v) * (1.0 - costheta)))
}

// Orthogonal returns a unit vector perpendicular to V.
func (v Vector3) Orthogonal() Vector3 {
	// cross with the axis most orthogonal to V
	other := Vector3{1.0, 0.0, 0.0}
	if math.Abs(v.Y) < math.Abs(v.X) {
		other = Vector3{0.0, 1.0, 0.0}
		if math.Abs(v.Z) < math.Abs(v.Y) {
			other = Vector3{0.0, 0.0, 1.0}
		}
	} else if math.Abs(v.Z) < math.Abs(v.X) {
		other = Vector3{0.0, 0.0, 1.0}
	}
	return v.Cross(other).Normalize()
}

// Project projects the point onto the view plane z=0, ie. dropping the z coordinate.
func (v Vector3) Project() Point {
	return Point{v.X, v.Y}
}

func (v Vector3) String() string {
	return fmt.Sprintf("[%g; %g; %g]", v.X, v.Y, v.Z)
}
