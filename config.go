package octree

import (
	"math"

	"github.com/akmonengine/octree/bounds"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// deepTreeLevels is the number of subdivision levels above which New warns about recursion depth.
const deepTreeLevels = 48

// Config describes the space indexed by an octree.
type Config struct {
	Bounds          bounds.Box `json:"bounds"`
	MinimumCellSize float64    `json:"minimum_cell_size"`
}

// Validate ensures all parts of the config are valid.
func (c Config) Validate() error {
	if !c.Bounds.IsFinite() {
		return errors.Errorf("bounds %s must be finite", c.Bounds)
	}
	for axis, name := range []string{"x", "y", "z"} {
		if c.Bounds.Min[axis] > c.Bounds.Max[axis] {
			return errors.Errorf("bounds %s: min %s exceeds max %s", c.Bounds, name, name)
		}
	}
	if math.IsNaN(c.MinimumCellSize) || math.IsInf(c.MinimumCellSize, 0) {
		return errors.New("minimum cell size must be finite")
	}
	if c.MinimumCellSize <= 0 {
		return errors.Errorf("invalid minimum cell size (%g), must be positive", c.MinimumCellSize)
	}
	return nil
}

// Levels returns how many times the root box can be split before reaching the minimum cell size.
func (c Config) Levels() int {
	ratio := c.Bounds.LargestDimension() / (2 * c.MinimumCellSize)
	if ratio < 1 {
		return 0
	}
	return int(math.Floor(math.Log2(ratio))) + 1
}

// Option configures an Octree.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger receiving the octree diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
