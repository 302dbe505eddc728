// Package octree implements a 3D spatial index that recursively splits an axis-aligned box into eight
// octants. Elements are keyed either by a point or by an axis-aligned region, and can be looked up by
// point or by box. Subtrees that become empty are collapsed back into leaves.
//
// An Octree is not safe for concurrent use; wrap it in a Locked when several goroutines share it.
package octree

import (
	"github.com/akmonengine/octree/bounds"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Octree owns the root node of the index and the minimum cell size shared by every node.
type Octree[T comparable] struct {
	root            *Node[T]
	minimumCellSize float64
	logger          *zap.Logger
	size            int
}

// NewOctree creates an octree covering box. Cells whose largest edge, halved, would fall below
// minimumCellSize are not split any further. minimumCellSize must be positive; it is not checked,
// use New to validate the parameters first.
func NewOctree[T comparable](box bounds.Box, minimumCellSize float64, opts ...Option) *Octree[T] {
	o := newOptions(opts)
	logger := o.logger.Named("octree")

	return &Octree[T]{
		root:            newNode[T](box, minimumCellSize, logger),
		minimumCellSize: minimumCellSize,
		logger:          logger,
	}
}

// New validates cfg and creates the octree it describes.
func New[T comparable](cfg Config, opts ...Option) (*Octree[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tree := NewOctree[T](cfg.Bounds, cfg.MinimumCellSize, opts...)
	if levels := cfg.Levels(); levels > deepTreeLevels {
		tree.logger.Warn("minimum cell size allows a very deep tree",
			zap.Int("levels", levels),
			zap.Stringer("bounds", cfg.Bounds),
			zap.Float64("minimum_cell_size", cfg.MinimumCellSize),
		)
	}

	return tree, nil
}

// Bounds returns the box covered by the octree.
func (t *Octree[T]) Bounds() bounds.Box {
	return t.root.box
}

// MinimumCellSize returns the size below which cells are not split.
func (t *Octree[T]) MinimumCellSize() float64 {
	return t.minimumCellSize
}

// Root returns the root node.
func (t *Octree[T]) Root() *Node[T] {
	return t.root
}

// Len returns the number of elements currently stored.
func (t *Octree[T]) Len() int {
	return t.size
}

// AddAt stores element at point. It returns the node that holds the element, or nil when the point
// lies outside the octree, in which case nothing is stored.
func (t *Octree[T]) AddAt(element T, point mgl64.Vec3) *Node[T] {
	node := t.root.addAt(element, point)
	if node != nil {
		t.size++
	}
	return node
}

// AddIn stores element for region. It returns the node that holds the element, or nil when region
// is not entirely inside the octree, in which case nothing is stored.
func (t *Octree[T]) AddIn(element T, region bounds.Box) *Node[T] {
	node := t.root.addIn(element, region)
	if node != nil {
		t.size++
	}
	return node
}

// AddShape stores element for the box enclosing shape.
func (t *Octree[T]) AddShape(element T, shape bounds.Shape) *Node[T] {
	return t.AddIn(element, shape.Bounds())
}

// Remove deletes the first stored element equal to element. It reports whether one was found.
func (t *Octree[T]) Remove(element T) bool {
	if !t.root.remove(element) {
		return false
	}
	t.size--
	return true
}

// ElementsAt returns the elements stored exactly at point together with the region elements whose
// region contains point. The boolean is false when nothing matched.
func (t *Octree[T]) ElementsAt(point mgl64.Vec3) ([]T, bool) {
	elements := t.root.collectAt(point, nil)
	return elements, len(elements) > 0
}

// ElementsIn returns the elements whose point lies in box and the region elements whose region
// intersects box. The boolean is false when nothing matched.
//
// box must lie inside the octree bounds; ElementsIn panics otherwise.
func (t *Octree[T]) ElementsIn(box bounds.Box) ([]T, bool) {
	if !box.IsContainedIn(t.root.box) {
		panic(errors.Errorf("query box %s escapes octree bounds %s", box, t.root.box))
	}

	elements := t.root.collectIn(box, nil)
	return elements, len(elements) > 0
}

// String dumps the whole tree, one node per line. The format is meant for debugging only.
func (t *Octree[T]) String() string {
	return t.root.String()
}
