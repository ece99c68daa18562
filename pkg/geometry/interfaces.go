package geometry

import (
	"errors"

	"github.com/kwan3217/kwantrace/pkg/core"
)

// ErrZeroDirection is returned when a ray has a zero-length direction.
// The quadratic's leading coefficient is dir.dir, so a zero direction
// would divide by zero; it is rejected before any arithmetic runs.
var ErrZeroDirection = errors.New("geometry: ray direction has zero length")

// Intersector is implemented by surfaces that can report the nearest
// ray intersection. Intersect returns the smallest ray parameter t >= 0
// at which the ray meets the surface, with ok=false when there is no
// such intersection. The only error condition is a zero-length ray
// direction.
type Intersector interface {
	Intersect(ray core.Ray) (t float64, ok bool, err error)
}
