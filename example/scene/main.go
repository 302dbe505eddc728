package main

import (
	"fmt"

	"github.com/akmonengine/octree"
	"github.com/akmonengine/octree/bounds"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// SetupScene indexes a few props of a small room: pickups at points, furniture as regions.
func SetupScene(logger *zap.Logger) (*octree.Octree[string], error) {
	tree, err := octree.New[string](octree.Config{
		Bounds:          bounds.Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{16, 16, 16}},
		MinimumCellSize: 1,
	}, octree.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	tree.AddAt("coin", mgl64.Vec3{1, 1, 1})
	tree.AddAt("key", mgl64.Vec3{1, 1, 1})
	tree.AddAt("lamp", mgl64.Vec3{12, 14, 3})

	tree.AddIn("table", bounds.Box{Min: mgl64.Vec3{2, 0, 2}, Max: mgl64.Vec3{5, 2, 4}})
	tree.AddShape("ball", bounds.Sphere{Center: mgl64.Vec3{10, 1, 10}, Radius: 0.5})
	crate := bounds.NewTransform()
	crate.Position = mgl64.Vec3{8, 1.5, 8}
	crate.Rotation = mgl64.QuatRotate(mgl64.DegToRad(45), mgl64.Vec3{0, 1, 0})
	tree.AddShape("crate", bounds.OrientedBox{HalfExtents: mgl64.Vec3{1, 1, 1}, Transform: crate})

	return tree, nil
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	tree, err := SetupScene(logger)
	if err != nil {
		logger.Fatal("cannot build scene", zap.Error(err))
	}

	fmt.Println("Scene:")
	fmt.Print(tree)
	fmt.Println()

	if elements, ok := tree.ElementsAt(mgl64.Vec3{1, 1, 1}); ok {
		fmt.Printf("At (1, 1, 1): %v\n", elements)
	}
	if elements, ok := tree.ElementsAt(mgl64.Vec3{3, 1, 3}); ok {
		fmt.Printf("At (3, 1, 3): %v\n", elements)
	}

	floor := bounds.Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{16, 2, 16}}
	if elements, ok := tree.ElementsIn(floor); ok {
		fmt.Printf("Near the floor: %v\n", elements)
	}

	tree.Remove("lamp")
	if _, ok := tree.ElementsAt(mgl64.Vec3{12, 14, 3}); !ok {
		fmt.Println("Lamp removed")
	}

	fmt.Printf("%d elements left\n", tree.Len())
}
