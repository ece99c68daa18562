package core

import "math"

// Mat3 represents a 3x3 matrix in row-major order
type Mat3 [3][3]float64

// IdentityMat3 returns the 3x3 identity matrix
func IdentityMat3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mul returns the matrix product m * other
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col]
		}
	}
	return result
}

// MulVec returns the matrix-vector product m * v
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transposed returns the transpose of the matrix
func (m Mat3) Transposed() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Determinant returns the determinant of the matrix
func (m Mat3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of the matrix using the explicit adjugate
// formula. Returns false if the matrix is singular.
func (m Mat3) Inverse() (Mat3, bool) {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	// Cofactors, already transposed into adjugate positions
	ca := e*i - f*h
	cd := c*h - b*i
	cg := b*f - c*e
	cb := f*g - d*i
	ce := a*i - c*g
	ch := c*d - a*f
	cc := d*h - e*g
	cf := b*g - a*h
	ci := a*e - b*d

	det := a*ca + b*cb + c*cc
	if det == 0 {
		return Mat3{}, false
	}
	detInv := 1.0 / det

	return Mat3{
		{ca * detInv, cd * detInv, cg * detInv},
		{cb * detInv, ce * detInv, ch * detInv},
		{cc * detInv, cf * detInv, ci * detInv},
	}, true
}

// Transform represents an affine map: a linear part M plus a translation T.
// It acts as a homogeneous matrix with an implicit w row: points carry an
// implied w=1 and are translated, directions carry an implied w=0 and are
// not.
type Transform struct {
	M Mat3
	T Vec3
}

// IdentityTransform returns the identity transform
func IdentityTransform() Transform {
	return Transform{M: IdentityMat3()}
}

// Translate returns a transform that moves points by (x, y, z)
func Translate(x, y, z float64) Transform {
	return Transform{M: IdentityMat3(), T: NewVec3(x, y, z)}
}

// Scale returns a transform that scales each axis independently
func Scale(x, y, z float64) Transform {
	return Transform{M: Mat3{
		{x, 0, 0},
		{0, y, 0},
		{0, 0, z},
	}}
}

// UniformScale returns a transform that scales all axes by s
func UniformScale(s float64) Transform {
	return Scale(s, s, s)
}

// RotateX returns a rotation about the X axis by angle radians
func RotateX(angle float64) Transform {
	c, s := math.Cos(angle), math.Sin(angle)
	return Transform{M: Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}}
}

// RotateY returns a rotation about the Y axis by angle radians
func RotateY(angle float64) Transform {
	c, s := math.Cos(angle), math.Sin(angle)
	return Transform{M: Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}}
}

// RotateZ returns a rotation about the Z axis by angle radians
func RotateZ(angle float64) Transform {
	c, s := math.Cos(angle), math.Sin(angle)
	return Transform{M: Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}}
}

// Mul returns the composition t * other, the transform that applies other
// first and then t
func (t Transform) Mul(other Transform) Transform {
	return Transform{
		M: t.M.Mul(other.M),
		T: t.M.MulVec(other.T).Add(t.T),
	}
}

// Compose combines transforms so they apply in the order given: the first
// argument acts on the input first
func Compose(transforms ...Transform) Transform {
	result := IdentityTransform()
	for _, tr := range transforms {
		result = tr.Mul(result)
	}
	return result
}

// ApplyPoint transforms a point, including the translation
func (t Transform) ApplyPoint(p Vec3) Vec3 {
	return t.M.MulVec(p).Add(t.T)
}

// ApplyDirection transforms a direction; the translation does not apply
func (t Transform) ApplyDirection(d Vec3) Vec3 {
	return t.M.MulVec(d)
}

// ApplyRay transforms a ray: the origin as a point, the direction as a
// direction. The ray parameter t of any point along the ray is preserved.
func (t Transform) ApplyRay(r Ray) Ray {
	return Ray{
		Origin:    t.ApplyPoint(r.Origin),
		Direction: t.ApplyDirection(r.Direction),
	}
}

// Inverse returns the inverse transform. The inverse of an affine map
// (M, T) is (M⁻¹, -M⁻¹T). Returns false if the linear part is singular.
func (t Transform) Inverse() (Transform, bool) {
	mInv, ok := t.M.Inverse()
	if !ok {
		return Transform{}, false
	}
	return Transform{
		M: mInv,
		T: mInv.MulVec(t.T).Negate(),
	}, true
}
