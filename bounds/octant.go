package bounds

// Octant names one of the eight children of a split box.
// Bit 0 selects the right (upper x) half, bit 1 the top (upper y) half and bit 2 the front (upper z) half.
type Octant uint8

const (
	BackBottomLeft Octant = iota
	BackBottomRight
	BackTopLeft
	BackTopRight
	FrontBottomLeft
	FrontBottomRight
	FrontTopLeft
	FrontTopRight
)

// OctantCount is the number of children of a split box.
const OctantCount = 8

// Octants lists every octant in routing order.
var Octants = [OctantCount]Octant{
	BackBottomLeft,
	BackBottomRight,
	BackTopLeft,
	BackTopRight,
	FrontBottomLeft,
	FrontBottomRight,
	FrontTopLeft,
	FrontTopRight,
}

var octantNames = [OctantCount]string{
	"back-bottom-left",
	"back-bottom-right",
	"back-top-left",
	"back-top-right",
	"front-bottom-left",
	"front-bottom-right",
	"front-top-left",
	"front-top-right",
}

// upper reports whether the octant takes the upper half along axis (0 = x, 1 = y, 2 = z).
func (o Octant) upper(axis int) bool {
	return o&(1<<axis) != 0
}

// IsRight reports whether the octant lies in the upper x half.
func (o Octant) IsRight() bool { return o.upper(0) }

// IsTop reports whether the octant lies in the upper y half.
func (o Octant) IsTop() bool { return o.upper(1) }

// IsFront reports whether the octant lies in the upper z half.
func (o Octant) IsFront() bool { return o.upper(2) }

func (o Octant) String() string {
	if int(o) >= OctantCount {
		return "invalid"
	}
	return octantNames[o]
}
