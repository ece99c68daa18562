package geometry

import (
	"errors"

	"github.com/kwan3217/kwantrace/pkg/core"
)

// Transformed places a surface in the world by an affine object-to-world
// transform. Intersection maps the ray into the object frame with the
// precomputed world-to-object inverse and defers to the wrapped surface.
// Because the origin and direction transform consistently, the ray
// parameter t found in the object frame is the same in the world frame.
type Transformed struct {
	Surface       Intersector
	objectToWorld core.Transform
	worldToObject core.Transform
}

// NewTransformed wraps a surface with an object-to-world transform.
// Returns an error if the transform's linear part is singular, since the
// world-to-object inverse would not exist.
func NewTransformed(surface Intersector, objectToWorld core.Transform) (Transformed, error) {
	worldToObject, ok := objectToWorld.Inverse()
	if !ok {
		return Transformed{}, errors.New("geometry: object-to-world transform is singular")
	}
	return Transformed{
		Surface:       surface,
		objectToWorld: objectToWorld,
		worldToObject: worldToObject,
	}, nil
}

// ObjectToWorld returns the transform the surface was placed with
func (t Transformed) ObjectToWorld() core.Transform {
	return t.objectToWorld
}

// Intersect maps the ray into the object frame and intersects there
func (t Transformed) Intersect(ray core.Ray) (float64, bool, error) {
	if ray.Direction.LengthSquared() == 0 {
		return 0, false, ErrZeroDirection
	}
	return t.Surface.Intersect(t.worldToObject.ApplyRay(ray))
}
