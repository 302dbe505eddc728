package bounds

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultEpsilon absorbs floating-point rounding at octant boundaries, so a point lying on a
// shared face is never rejected by both neighbours.
const DefaultEpsilon = 1e-10

// Box represents an axis-aligned bounding box.
// Min must not exceed Max on any axis; this is not checked.
type Box struct {
	Min mgl64.Vec3 `json:"min"`
	Max mgl64.Vec3 `json:"max"`
}

// NewBox returns the box spanning the two corners, whatever their order.
func NewBox(a, b mgl64.Vec3) Box {
	return Box{
		Min: mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])},
		Max: mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])},
	}
}

// Size returns the edge lengths of the box.
func (b Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// HalfSize returns half the edge lengths of the box.
func (b Box) HalfSize() mgl64.Vec3 {
	return b.Size().Mul(0.5)
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.HalfSize())
}

// LargestDimension returns the longest edge length.
func (b Box) LargestDimension() float64 {
	size := b.Size()
	return math.Max(size.X(), math.Max(size.Y(), size.Z()))
}

// Octant returns one of the eight sub-boxes obtained by splitting b at its midpoint.
// Lower and upper halves meet on the same computed plane, so the eight octants tile b exactly.
func (b Box) Octant(o Octant) Box {
	mid := b.Center()

	var octant Box
	for axis := 0; axis < 3; axis++ {
		if o.upper(axis) {
			octant.Min[axis] = mid[axis]
			octant.Max[axis] = b.Max[axis]
		} else {
			octant.Min[axis] = b.Min[axis]
			octant.Max[axis] = mid[axis]
		}
	}

	return octant
}

// Contains checks if a point is inside the box, tolerating DefaultEpsilon on every face.
func (b Box) Contains(point mgl64.Vec3) bool {
	return b.ContainsEpsilon(point, DefaultEpsilon)
}

// ContainsEpsilon checks if a point lies within [Min-epsilon, Max+epsilon] on every axis.
func (b Box) ContainsEpsilon(point mgl64.Vec3, epsilon float64) bool {
	return point.X() >= b.Min.X()-epsilon && point.X() <= b.Max.X()+epsilon &&
		point.Y() >= b.Min.Y()-epsilon && point.Y() <= b.Max.Y()+epsilon &&
		point.Z() >= b.Min.Z()-epsilon && point.Z() <= b.Max.Z()+epsilon
}

// IsContainedIn checks if b lies entirely inside other.
// The test is exact: region placement must not be loosened by the point tolerance.
func (b Box) IsContainedIn(other Box) bool {
	return b.Min.X() >= other.Min.X() && b.Max.X() <= other.Max.X() &&
		b.Min.Y() >= other.Min.Y() && b.Max.Y() <= other.Max.Y() &&
		b.Min.Z() >= other.Min.Z() && b.Max.Z() <= other.Max.Z()
}

// Intersects checks if two boxes overlap. Boxes sharing only a face, edge or corner intersect.
func (b Box) Intersects(other Box) bool {
	// boxes overlap unless separated on one axis
	return b.Max.X() >= other.Min.X() && b.Min.X() <= other.Max.X() &&
		b.Max.Y() >= other.Min.Y() && b.Min.Y() <= other.Max.Y() &&
		b.Max.Z() >= other.Min.Z() && b.Min.Z() <= other.Max.Z()
}

// IsFinite reports whether every coordinate is a finite number.
func (b Box) IsFinite() bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(b.Min[i]) || math.IsInf(b.Min[i], 0) || math.IsNaN(b.Max[i]) || math.IsInf(b.Max[i], 0) {
			return false
		}
	}
	return true
}

func (b Box) String() string {
	return fmt.Sprintf("[(%g, %g, %g) - (%g, %g, %g)]",
		b.Min.X(), b.Min.Y(), b.Min.Z(), b.Max.X(), b.Max.Y(), b.Max.Z())
}
