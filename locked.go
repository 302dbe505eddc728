package octree

import (
	"sync"

	"github.com/akmonengine/octree/bounds"
	"github.com/go-gl/mathgl/mgl64"
)

// Locked serializes access to an Octree: mutations take the write lock, queries the read lock.
// Nodes are not handed out, since they could not be used safely outside the lock.
type Locked[T comparable] struct {
	mutex sync.RWMutex
	tree  *Octree[T]
}

// NewLocked wraps tree. The caller must not use tree directly afterwards.
func NewLocked[T comparable](tree *Octree[T]) *Locked[T] {
	return &Locked[T]{tree: tree}
}

// AddAt stores element at point and reports whether it was inside the octree.
func (l *Locked[T]) AddAt(element T, point mgl64.Vec3) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.tree.AddAt(element, point) != nil
}

// AddIn stores element for region and reports whether it was inside the octree.
func (l *Locked[T]) AddIn(element T, region bounds.Box) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.tree.AddIn(element, region) != nil
}

// AddShape stores element for the box enclosing shape and reports whether it was inside the octree.
func (l *Locked[T]) AddShape(element T, shape bounds.Shape) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.tree.AddShape(element, shape) != nil
}

// Remove deletes the first stored element equal to element.
func (l *Locked[T]) Remove(element T) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.tree.Remove(element)
}

// ElementsAt is the locked counterpart of Octree.ElementsAt.
func (l *Locked[T]) ElementsAt(point mgl64.Vec3) ([]T, bool) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.ElementsAt(point)
}

// ElementsIn is the locked counterpart of Octree.ElementsIn, and panics the same way.
func (l *Locked[T]) ElementsIn(box bounds.Box) ([]T, bool) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.ElementsIn(box)
}

// ElementsAtAll is the locked counterpart of Octree.ElementsAtAll.
func (l *Locked[T]) ElementsAtAll(points []mgl64.Vec3, workers int) [][]T {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.ElementsAtAll(points, workers)
}

// Len returns the number of elements currently stored.
func (l *Locked[T]) Len() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.Len()
}

func (l *Locked[T]) String() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.String()
}
