// Package vec3 provides the minimal float3 vector arithmetic consumed by
// the dynbvh core: componentwise min/max, dot product, scaling and
// normalization. No vector-math dependency was found anywhere in the
// retrieval pack for this project, so this package is hand-written
// against the standard library only.
package vec3

import "math"

// Vec3 is a three-component float32 vector.
type Vec3 struct {
	X, Y, Z float32
}

// New returns the vector (x, y, z).
func New(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns a vector with all three components set to v.
func Splat(v float32) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a scaled by s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Mul returns the componentwise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Min returns the componentwise minimum of a and b.
func Min(a, b Vec3) Vec3 {
	return Vec3{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

// Max returns the componentwise maximum of a and b.
func Max(a, b Vec3) Vec3 {
	return Vec3{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Length returns the Euclidean length of a.
func (a Vec3) Length() float32 {
	return float32(math.Sqrt(float64(a.Dot(a))))
}

// Normalize returns a scaled to unit length. The zero vector is
// returned unchanged (callers that care about degeneracy, such as
// [ray.New], must check for it themselves).
func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// Reciprocal returns the componentwise reciprocal 1/a. Division by a
// zero component intentionally produces IEEE-754 signed infinity; this
// is relied upon by the AABB slab test for axis-aligned rays.
func (a Vec3) Reciprocal() Vec3 {
	return Vec3{1 / a.X, 1 / a.Y, 1 / a.Z}
}

// MaxComponent returns the largest of the three components.
func (a Vec3) MaxComponent() float32 {
	return max(a.X, a.Y, a.Z)
}

// MinComponent returns the smallest of the three components.
func (a Vec3) MinComponent() float32 {
	return min(a.X, a.Y, a.Z)
}
