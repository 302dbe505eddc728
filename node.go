package octree

import (
	"fmt"
	"slices"
	"strings"

	"github.com/akmonengine/octree/bounds"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// entry is an element stored at a point.
type entry[T comparable] struct {
	element T
	point   mgl64.Vec3
}

// regionEntry is an element stored for a whole region.
type regionEntry[T comparable] struct {
	element T
	region  bounds.Box
}

// nodeState is either *leafState or *internalState, never both.
type nodeState[T comparable] interface {
	isLeaf() bool
}

// leafState holds the point-keyed elements of a leaf.
// Above the minimum cell size every entry shares point; at or below it, entries at distinct points
// accumulate and point only remembers the first of them.
type leafState[T comparable] struct {
	point    mgl64.Vec3
	hasPoint bool
	entries  []entry[T]
}

func (*leafState[T]) isLeaf() bool { return true }

func (s *leafState[T]) append(element T, point mgl64.Vec3) {
	if !s.hasPoint {
		s.point = point
		s.hasPoint = true
	}
	s.entries = append(s.entries, entry[T]{element: element, point: point})
}

// internalState delegates the whole box of a node to eight children, indexed by bounds.Octant.
type internalState[T comparable] struct {
	children [bounds.OctantCount]*Node[T]
}

func (*internalState[T]) isLeaf() bool { return false }

// Node is one cell of an Octree. A node is either a leaf storing point-keyed elements, or an internal
// node whose box is split between eight children. Independently of that, it stores the region-keyed
// elements whose region it contains but none of its children does.
type Node[T comparable] struct {
	box             bounds.Box
	minimumCellSize float64
	logger          *zap.Logger

	state   nodeState[T]
	regions []regionEntry[T]
}

func newNode[T comparable](box bounds.Box, minimumCellSize float64, logger *zap.Logger) *Node[T] {
	return &Node[T]{
		box:             box,
		minimumCellSize: minimumCellSize,
		logger:          logger,
		state:           &leafState[T]{},
	}
}

// Box returns the space covered by the node.
func (n *Node[T]) Box() bounds.Box {
	return n.box
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.state.isLeaf()
}

// Child returns the child covering octant o, or nil when n is a leaf.
func (n *Node[T]) Child(o bounds.Octant) *Node[T] {
	s, ok := n.state.(*internalState[T])
	if !ok || int(o) >= bounds.OctantCount {
		return nil
	}
	return s.children[o]
}

// Point returns the point recorded by a leaf, if any.
func (n *Node[T]) Point() (mgl64.Vec3, bool) {
	s, ok := n.state.(*leafState[T])
	if !ok {
		return mgl64.Vec3{}, false
	}
	return s.point, s.hasPoint
}

// Elements returns the point-keyed elements held directly by a leaf.
func (n *Node[T]) Elements() []T {
	s, ok := n.state.(*leafState[T])
	if !ok {
		return nil
	}

	elements := make([]T, 0, len(s.entries))
	for _, e := range s.entries {
		elements = append(elements, e.element)
	}
	return elements
}

// RegionElements returns the region-keyed elements held directly by the node.
func (n *Node[T]) RegionElements() []T {
	elements := make([]T, 0, len(n.regions))
	for _, r := range n.regions {
		elements = append(elements, r.element)
	}
	return elements
}

// atFloor reports whether splitting the node would produce cells below the minimum cell size.
func (n *Node[T]) atFloor() bool {
	return n.box.LargestDimension()/2 < n.minimumCellSize
}

// isEmptyLeaf reports whether the node is a leaf holding nothing at all.
func (n *Node[T]) isEmptyLeaf() bool {
	s, ok := n.state.(*leafState[T])
	return ok && len(s.entries) == 0 && len(n.regions) == 0
}

// addAt stores element at point in this subtree and returns the node that holds it,
// or nil when the point lies outside the node.
func (n *Node[T]) addAt(element T, point mgl64.Vec3) *Node[T] {
	if !n.box.Contains(point) {
		return nil
	}

	switch s := n.state.(type) {
	case *internalState[T]:
		for _, child := range s.children {
			if stored := child.addAt(element, point); stored != nil {
				return stored
			}
		}
		n.logger.Warn("point accepted by node but rejected by every child, dropping element",
			zap.Stringer("box", n.box),
			zap.Float64s("point", point[:]),
		)
		return nil

	case *leafState[T]:
		if n.atFloor() {
			s.append(element, point)
			return n
		}

		if s.hasPoint && len(s.entries) == 0 {
			n.logger.Warn("leaf holds a point without elements, resetting",
				zap.Stringer("box", n.box),
				zap.Float64s("point", s.point[:]),
			)
			*s = leafState[T]{}
		}

		if !s.hasPoint || s.point == point {
			s.append(element, point)
			return n
		}

		n.subdivide()
		return n.addAt(element, point)
	}

	return nil
}

// addIn stores element for region at the deepest node that contains the region without it fitting
// entirely in one child. It returns that node, or nil when region is not inside this node.
func (n *Node[T]) addIn(element T, region bounds.Box) *Node[T] {
	if !region.IsContainedIn(n.box) {
		return nil
	}

	switch s := n.state.(type) {
	case *internalState[T]:
		var target *Node[T]
		containing := 0
		for _, child := range s.children {
			if region.IsContainedIn(child.box) {
				target = child
				containing++
			}
		}
		if containing == 1 {
			return target.addIn(element, region)
		}

		n.regions = append(n.regions, regionEntry[T]{element: element, region: region})
		return n

	case *leafState[T]:
		if n.atFloor() {
			n.regions = append(n.regions, regionEntry[T]{element: element, region: region})
			return n
		}

		n.subdivide()
		return n.addIn(element, region)
	}

	return nil
}

// subdivide turns a leaf into an internal node and redistributes everything it held.
func (n *Node[T]) subdivide() {
	leaf, ok := n.state.(*leafState[T])
	if !ok {
		return
	}

	internal := &internalState[T]{}
	for _, o := range bounds.Octants {
		internal.children[o] = newNode[T](n.box.Octant(o), n.minimumCellSize, n.logger)
	}
	n.state = internal

	for _, e := range leaf.entries {
		n.addAt(e.element, e.point)
	}

	regions := n.regions
	n.regions = nil
	for _, r := range regions {
		n.addIn(r.element, r.region)
	}

	n.logger.Debug("subdivided node",
		zap.Stringer("box", n.box),
		zap.Int("entries", len(leaf.entries)),
		zap.Int("regions", len(regions)),
	)
}

// remove deletes the first element equal to element found in this subtree. Every internal node on the
// way back up tries to collapse.
func (n *Node[T]) remove(element T) bool {
	if i := slices.IndexFunc(n.regions, func(r regionEntry[T]) bool { return r.element == element }); i >= 0 {
		n.regions = slices.Delete(n.regions, i, i+1)
		n.collapse()
		return true
	}

	switch s := n.state.(type) {
	case *leafState[T]:
		i := slices.IndexFunc(s.entries, func(e entry[T]) bool { return e.element == element })
		if i < 0 {
			return false
		}
		s.entries = slices.Delete(s.entries, i, i+1)
		if len(s.entries) == 0 {
			*s = leafState[T]{}
		}
		return true

	case *internalState[T]:
		for _, child := range s.children {
			if child.remove(element) {
				n.collapse()
				return true
			}
		}
	}

	return false
}

// collapse turns an internal node back into an empty leaf once every child is an empty leaf.
// Children still holding regions keep the node internal.
func (n *Node[T]) collapse() {
	s, ok := n.state.(*internalState[T])
	if !ok {
		return
	}

	for _, child := range s.children {
		if !child.isEmptyLeaf() {
			return
		}
	}

	n.state = &leafState[T]{}
	n.logger.Debug("collapsed node", zap.Stringer("box", n.box))
}

// collectAt appends every element stored exactly at point, and every region element whose region
// contains point, along the path(s) from n to the leaves containing point.
func (n *Node[T]) collectAt(point mgl64.Vec3, out []T) []T {
	if !n.box.Contains(point) {
		return out
	}

	for _, r := range n.regions {
		if r.region.Contains(point) {
			out = append(out, r.element)
		}
	}

	switch s := n.state.(type) {
	case *leafState[T]:
		for _, e := range s.entries {
			if e.point == point {
				out = append(out, e.element)
			}
		}
	case *internalState[T]:
		for _, child := range s.children {
			out = child.collectAt(point, out)
		}
	}

	return out
}

// collectIn appends every element of the subtree whose point lies in query or whose region
// intersects query.
func (n *Node[T]) collectIn(query bounds.Box, out []T) []T {
	for _, r := range n.regions {
		if r.region.Intersects(query) {
			out = append(out, r.element)
		}
	}

	switch s := n.state.(type) {
	case *leafState[T]:
		for _, e := range s.entries {
			if query.Contains(e.point) {
				out = append(out, e.element)
			}
		}
	case *internalState[T]:
		for _, child := range s.children {
			switch {
			case child.box.IsContainedIn(query):
				out = child.collectAll(out)
			case child.box.Intersects(query):
				out = child.collectIn(query, out)
			}
		}
	}

	return out
}

// collectAll appends every element of the subtree.
func (n *Node[T]) collectAll(out []T) []T {
	for _, r := range n.regions {
		out = append(out, r.element)
	}

	switch s := n.state.(type) {
	case *leafState[T]:
		for _, e := range s.entries {
			out = append(out, e.element)
		}
	case *internalState[T]:
		for _, child := range s.children {
			out = child.collectAll(out)
		}
	}

	return out
}

// String dumps the subtree, one node per line, indented by depth.
func (n *Node[T]) String() string {
	var sb strings.Builder
	n.dump(&sb, 0, "root")
	return sb.String()
}

func (n *Node[T]) dump(sb *strings.Builder, depth int, label string) {
	sb.WriteString(strings.Repeat("  ", depth))

	switch s := n.state.(type) {
	case *leafState[T]:
		fmt.Fprintf(sb, "%s %s leaf", label, n.box)
		if s.hasPoint {
			fmt.Fprintf(sb, " point=(%g, %g, %g)", s.point.X(), s.point.Y(), s.point.Z())
		}
		if len(s.entries) > 0 {
			fmt.Fprintf(sb, " elements=%v", n.Elements())
		}
	case *internalState[T]:
		fmt.Fprintf(sb, "%s %s internal", label, n.box)
	}
	if len(n.regions) > 0 {
		fmt.Fprintf(sb, " regions=%v", n.RegionElements())
	}
	sb.WriteString("\n")

	if s, ok := n.state.(*internalState[T]); ok {
		for o, child := range s.children {
			child.dump(sb, depth+1, bounds.Octant(o).String())
		}
	}
}
