package geometry

import "github.com/kwan3217/kwantrace/pkg/core"

// Sphere represents a sphere surface with a center and a non-negative
// radius. Radius zero degenerates to a point target: the intersection
// routine still works and reports a hit only for a ray passing exactly
// through the center.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Intersect tests the ray against the sphere and returns the nearest
// non-negative ray parameter. The direction does not need to be unit
// length: the quadratic's leading coefficient dir.dir keeps t correct at
// any scale.
func (s Sphere) Intersect(ray core.Ray) (float64, bool, error) {
	if ray.Direction.LengthSquared() == 0 {
		return 0, false, ErrZeroDirection
	}

	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: a*t^2 + b*t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	t, ok := nearestRoot(a, b, c)
	return t, ok, nil
}

// AsQuadric expresses the sphere in general quadric form:
// p.p - 2*center.p + (center.center - r^2) = 0.
func (s Sphere) AsQuadric() Quadric {
	return Quadric{
		A: core.IdentityMat3(),
		B: s.Center.Multiply(-2),
		C: s.Center.Dot(s.Center) - s.Radius*s.Radius,
	}
}
