package bounds

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape is anything that can be indexed by the axis-aligned box enclosing it.
type Shape interface {
	Bounds() Box
}

// Sphere is a ball of the given radius around Center.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// Bounds returns the box enclosing the sphere. Rotation has no effect on it.
func (s Sphere) Bounds() Box {
	radiusVec := mgl64.Vec3{s.Radius, s.Radius, s.Radius}

	return Box{
		Min: s.Center.Sub(radiusVec),
		Max: s.Center.Add(radiusVec),
	}
}

// Transform represents a position and orientation in 3D space
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// OrientedBox is a box given by its half-extents (half-width, half-height, half-depth),
// placed and rotated by Transform.
type OrientedBox struct {
	HalfExtents mgl64.Vec3
	Transform   Transform
}

// Bounds returns the axis-aligned box enclosing the eight rotated corners.
func (b OrientedBox) Bounds() Box {
	hx, hy, hz := b.HalfExtents.X(), b.HalfExtents.Y(), b.HalfExtents.Z()
	corners := [8]mgl64.Vec3{
		{-hx, -hy, -hz},
		{+hx, -hy, -hz},
		{-hx, +hy, -hz},
		{+hx, +hy, -hz},
		{-hx, -hy, +hz},
		{+hx, -hy, +hz},
		{-hx, +hy, +hz},
		{+hx, +hy, +hz},
	}

	rotation := b.Transform.Rotation
	if rotation == (mgl64.Quat{}) {
		rotation = mgl64.QuatIdent()
	}

	worldCorner := rotation.Rotate(corners[0]).Add(b.Transform.Position)
	min := worldCorner
	max := worldCorner

	for i := 1; i < 8; i++ {
		worldCorner = rotation.Rotate(corners[i]).Add(b.Transform.Position)

		min[0] = math.Min(min[0], worldCorner[0])
		min[1] = math.Min(min[1], worldCorner[1])
		min[2] = math.Min(min[2], worldCorner[2])

		max[0] = math.Max(max[0], worldCorner[0])
		max[1] = math.Max(max[1], worldCorner[1])
		max[2] = math.Max(max[2], worldCorner[2])
	}

	return Box{Min: min, Max: max}
}

// Bounds lets a Box be used wherever a Shape is expected.
func (b Box) Bounds() Box {
	return b
}
