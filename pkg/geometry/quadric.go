package geometry

import (
	"math"

	"github.com/kwan3217/kwantrace/pkg/core"
)

// Quadric is an implicit quadric surface, the set of points p satisfying
//
//	p.(A*p) + B.p + C = 0
//
// with A symmetric. A sphere is the simplest case (see Sphere.AsQuadric);
// ellipsoids, cylinders, cones and paraboloids are all expressible by
// choosing A, B and C.
type Quadric struct {
	A core.Mat3
	B core.Vec3
	C float64
}

// Intersect returns the nearest non-negative ray parameter at which the
// ray meets the quadric. Substituting p = origin + t*dir into the surface
// equation gives a quadratic in t:
//
//	a = dir.(A*dir)
//	b = 2*dir.(A*origin) + B.dir
//	c = origin.(A*origin) + B.origin + C
//
// The cross terms collapse because A is symmetric. When a == 0 the ray
// runs along a direction where the surface is linear (e.g. a plane, or a
// paraboloid's axis) and the single linear root is used instead. A ray
// lying entirely in the surface (a, b and c all zero) reports a miss:
// there is no single nearest point to return.
func (q Quadric) Intersect(ray core.Ray) (float64, bool, error) {
	if ray.Direction.LengthSquared() == 0 {
		return 0, false, ErrZeroDirection
	}

	o, dir := ray.Origin, ray.Direction
	a := dir.Dot(q.A.MulVec(dir))
	b := 2*dir.Dot(q.A.MulVec(o)) + q.B.Dot(dir)
	c := o.Dot(q.A.MulVec(o)) + q.B.Dot(o) + q.C

	if a == 0 {
		if b == 0 {
			return 0, false, nil
		}
		t := -c / b
		if t < 0 {
			return 0, false, nil
		}
		return t, true, nil
	}

	t, ok := nearestRoot(a, b, c)
	return t, ok, nil
}

// nearestRoot solves a*t^2 + b*t + c = 0 and returns the smallest
// non-negative root. A negative discriminant or two negative roots mean
// the ray misses the surface or it lies entirely behind the origin.
func nearestRoot(a, b, c float64) (float64, bool) {
	d := b*b - 4*a*c
	if d < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(d)

	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	// Dividing by a negative leading coefficient reverses the root order
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	// Try the closer root first
	t := t1
	if t < 0 {
		t = t2
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
