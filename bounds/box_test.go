package bounds

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// Intersects
// =============================================================================

func TestBoxIntersects_Separated(t *testing.T) {
	tests := []struct {
		name string
		box1 Box
		box2 Box
	}{
		{
			name: "Separated on X axis (positive)",
			box1: Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			box2: Box{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{3, 1, 1}},
		},
		{
			name: "Separated on X axis (negative)",
			box1: Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			box2: Box{Min: mgl64.Vec3{-2, 0, 0}, Max: mgl64.Vec3{-1, 1, 1}},
		},
		{
			name: "Separated on Y axis",
			box1: Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			box2: Box{Min: mgl64.Vec3{0, 2, 0}, Max: mgl64.Vec3{1, 3, 1}},
		},
		{
			name: "Separated on Z axis",
			box1: Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			box2: Box{Min: mgl64.Vec3{0, 0, -2}, Max: mgl64.Vec3{1, 1, -1}},
		},
		{
			name: "Separated on one axis only, overlapping on the others",
			box1: Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}},
			box2: Box{Min: mgl64.Vec3{1, 1, 2.5}, Max: mgl64.Vec3{3, 3, 3}},
		},
		{
			name: "Corner near but not touching",
			box1: Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			box2: Box{Min: mgl64.Vec3{1.01, 1.01, 1.01}, Max: mgl64.Vec3{2, 2, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.box1.Intersects(tt.box2) {
				t.Errorf("Boxes should not intersect")
			}
			// Test symmetry
			if tt.box2.Intersects(tt.box1) {
				t.Errorf("Boxes should not intersect (symmetry test)")
			}
		})
	}
}

func TestBoxIntersects_Overlapping(t *testing.T) {
	tests := []struct {
		name string
		box1 Box
		box2 Box
	}{
		{
			name: "Identical",
			box1: Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			box2: Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
		},
		{
			name: "Partial overlap on all axes",
			box1: Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}},
			box2: Box{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{3, 3, 3}},
		},
		{
			name: "Complete containment",
			box1: Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{10, 10, 10}},
			box2: Box{Min: mgl64.Vec3{2, 2, 2}, Max: mgl64.Vec3{3, 3, 3}},
		},
		{
			name: "Face touching",
			box1: Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 2, 2}},
			box2: Box{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{2, 2, 2}},
		},
		{
			name: "Corner touching",
			box1: Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			box2: Box{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{2, 2, 2}},
		},
		{
			name: "Degenerate point box inside",
			box1: Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}},
			box2: Box{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{1, 1, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.box1.Intersects(tt.box2) {
				t.Errorf("Boxes should intersect")
			}
			// Test symmetry
			if !tt.box2.Intersects(tt.box1) {
				t.Errorf("Boxes should intersect (symmetry test)")
			}
		})
	}
}

// =============================================================================
// Contains / IsContainedIn
// =============================================================================

func TestBoxContains(t *testing.T) {
	box := Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}}

	tests := []struct {
		name     string
		point    mgl64.Vec3
		expected bool
	}{
		{"Center point", mgl64.Vec3{1, 1, 1}, true},
		{"Min corner", mgl64.Vec3{0, 0, 0}, true},
		{"Max corner", mgl64.Vec3{2, 2, 2}, true},
		{"Within epsilon above max", mgl64.Vec3{2 + DefaultEpsilon/2, 1, 1}, true},
		{"Within epsilon below min", mgl64.Vec3{1, -DefaultEpsilon / 2, 1}, true},
		{"Beyond epsilon above max", mgl64.Vec3{2 + 1e-6, 1, 1}, false},
		{"Outside (X too large)", mgl64.Vec3{3, 1, 1}, false},
		{"Outside (Y too small)", mgl64.Vec3{1, -1, 1}, false},
		{"Outside (Z too large)", mgl64.Vec3{1, 1, 3}, false},
		{"NaN", mgl64.Vec3{math.NaN(), 1, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := box.Contains(tt.point)
			if result != tt.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tt.point, result, tt.expected)
			}
		})
	}
}

func TestBoxContainsEpsilon(t *testing.T) {
	box := Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}
	point := mgl64.Vec3{1.05, 0.5, 0.5}

	if box.ContainsEpsilon(point, 0) {
		t.Errorf("ContainsEpsilon(%v, 0) should be false", point)
	}
	if !box.ContainsEpsilon(point, 0.1) {
		t.Errorf("ContainsEpsilon(%v, 0.1) should be true", point)
	}
}

func TestBoxIsContainedIn(t *testing.T) {
	outer := Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{4, 4, 4}}

	tests := []struct {
		name     string
		inner    Box
		expected bool
	}{
		{"Identical", outer, true},
		{"Strictly inside", Box{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{2, 2, 2}}, true},
		{"Touching max face", Box{Min: mgl64.Vec3{2, 2, 2}, Max: mgl64.Vec3{4, 4, 4}}, true},
		{"Straddling", Box{Min: mgl64.Vec3{3, 3, 3}, Max: mgl64.Vec3{5, 5, 5}}, false},
		{"Outside", Box{Min: mgl64.Vec3{5, 5, 5}, Max: mgl64.Vec3{6, 6, 6}}, false},
		// The point tolerance must not leak into the structural test.
		{"Beyond max by less than epsilon", Box{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{4 + DefaultEpsilon/2, 2, 2}}, false},
		{"Below min by less than epsilon", Box{Min: mgl64.Vec3{-DefaultEpsilon / 2, 1, 1}, Max: mgl64.Vec3{2, 2, 2}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.inner.IsContainedIn(outer)
			if result != tt.expected {
				t.Errorf("IsContainedIn() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestBoxIsContainedIn_NotSymmetric(t *testing.T) {
	small := Box{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{2, 2, 2}}
	large := Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{4, 4, 4}}

	if !small.IsContainedIn(large) {
		t.Error("small box should be contained in large box")
	}
	if large.IsContainedIn(small) {
		t.Error("large box should not be contained in small box")
	}
}

// =============================================================================
// Octants
// =============================================================================

func volume(b Box) float64 {
	size := b.Size()
	return size.X() * size.Y() * size.Z()
}

func TestBoxOctant_Named(t *testing.T) {
	box := Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{8, 8, 8}}

	tests := []struct {
		octant   Octant
		expected Box
	}{
		{BackBottomLeft, Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{4, 4, 4}}},
		{BackBottomRight, Box{Min: mgl64.Vec3{4, 0, 0}, Max: mgl64.Vec3{8, 4, 4}}},
		{BackTopLeft, Box{Min: mgl64.Vec3{0, 4, 0}, Max: mgl64.Vec3{4, 8, 4}}},
		{BackTopRight, Box{Min: mgl64.Vec3{4, 4, 0}, Max: mgl64.Vec3{8, 8, 4}}},
		{FrontBottomLeft, Box{Min: mgl64.Vec3{0, 0, 4}, Max: mgl64.Vec3{4, 4, 8}}},
		{FrontBottomRight, Box{Min: mgl64.Vec3{4, 0, 4}, Max: mgl64.Vec3{8, 4, 8}}},
		{FrontTopLeft, Box{Min: mgl64.Vec3{0, 4, 4}, Max: mgl64.Vec3{4, 8, 8}}},
		{FrontTopRight, Box{Min: mgl64.Vec3{4, 4, 4}, Max: mgl64.Vec3{8, 8, 8}}},
	}

	for _, tt := range tests {
		t.Run(tt.octant.String(), func(t *testing.T) {
			result := box.Octant(tt.octant)
			if result != tt.expected {
				t.Errorf("Octant(%v) = %v, expected %v", tt.octant, result, tt.expected)
			}
		})
	}
}

func TestBoxOctant_Partition(t *testing.T) {
	boxes := []Box{
		{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{8, 8, 8}},
		{Min: mgl64.Vec3{-3.7, 0.1, -100}, Max: mgl64.Vec3{5.3, 0.7, 100}},
		{Min: mgl64.Vec3{0.1, 0.2, 0.3}, Max: mgl64.Vec3{0.7, 1.9, 0.31}},
	}

	for _, box := range boxes {
		t.Run(box.String(), func(t *testing.T) {
			total := 0.0
			for _, o := range Octants {
				octant := box.Octant(o)
				if !octant.IsContainedIn(box) {
					t.Errorf("%v octant %v escapes %v", o, octant, box)
				}
				total += volume(octant)

				// each octant touches the box on its outer faces
				for axis := 0; axis < 3; axis++ {
					if o.upper(axis) && octant.Max[axis] != box.Max[axis] {
						t.Errorf("%v octant should reach max on axis %d", o, axis)
					}
					if !o.upper(axis) && octant.Min[axis] != box.Min[axis] {
						t.Errorf("%v octant should start at min on axis %d", o, axis)
					}
				}

				// neighbours across one axis share their face exactly
				for axis := 0; axis < 3; axis++ {
					if o.upper(axis) {
						continue
					}
					neighbour := box.Octant(o | 1<<axis)
					if octant.Max[axis] != neighbour.Min[axis] {
						t.Errorf("%v and %v do not share a face on axis %d", o, Octant(o|1<<axis), axis)
					}
				}
			}

			if math.Abs(total-volume(box)) > 1e-9*math.Max(1, volume(box)) {
				t.Errorf("octant volumes sum to %v, expected %v", total, volume(box))
			}
		})
	}
}

func TestBoxOctant_NoOverlap(t *testing.T) {
	box := Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}}

	// Sample cell centers of a 4x4x4 grid: each must lie strictly inside exactly one octant.
	for x := 0.25; x < 2; x += 0.5 {
		for y := 0.25; y < 2; y += 0.5 {
			for z := 0.25; z < 2; z += 0.5 {
				p := mgl64.Vec3{x, y, z}
				count := 0
				for _, o := range Octants {
					if box.Octant(o).ContainsEpsilon(p, 0) {
						count++
					}
				}
				if count != 1 {
					t.Errorf("point %v lies in %d octants, expected 1", p, count)
				}
			}
		}
	}
}

func TestOctant_Sides(t *testing.T) {
	if !FrontTopRight.IsFront() || !FrontTopRight.IsTop() || !FrontTopRight.IsRight() {
		t.Error("FrontTopRight should be front, top and right")
	}
	if BackBottomLeft.IsFront() || BackBottomLeft.IsTop() || BackBottomLeft.IsRight() {
		t.Error("BackBottomLeft should be back, bottom and left")
	}
	if Octant(OctantCount).String() != "invalid" {
		t.Error("out of range octant should be invalid")
	}
}

// =============================================================================
// Derived values
// =============================================================================

func TestBoxDerived(t *testing.T) {
	box := NewBox(mgl64.Vec3{4, 2, 6}, mgl64.Vec3{0, 0, 0})

	if box.Min != (mgl64.Vec3{0, 0, 0}) || box.Max != (mgl64.Vec3{4, 2, 6}) {
		t.Fatalf("NewBox() = %v, corners not ordered", box)
	}
	if box.Size() != (mgl64.Vec3{4, 2, 6}) {
		t.Errorf("Size() = %v", box.Size())
	}
	if box.HalfSize() != (mgl64.Vec3{2, 1, 3}) {
		t.Errorf("HalfSize() = %v", box.HalfSize())
	}
	if box.Center() != (mgl64.Vec3{2, 1, 3}) {
		t.Errorf("Center() = %v", box.Center())
	}
	if box.LargestDimension() != 6 {
		t.Errorf("LargestDimension() = %v", box.LargestDimension())
	}
	if !box.IsFinite() {
		t.Error("IsFinite() should be true")
	}
	if (Box{Max: mgl64.Vec3{math.Inf(1), 0, 0}}).IsFinite() {
		t.Error("IsFinite() should be false for infinite bounds")
	}
}
