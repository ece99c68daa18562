package core

import (
	"math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{
			name:     "x cross y is z",
			a:        NewVec3(1, 0, 0),
			b:        NewVec3(0, 1, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "y cross x is negative z",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(1, 0, 0),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "parallel vectors give zero",
			a:        NewVec3(2, -4, 6),
			b:        NewVec3(1, -2, 3),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(3, 4, 12)

	if got := v.Dot(v); got != v.LengthSquared() {
		t.Errorf("Dot with self %f disagrees with LengthSquared %f", got, v.LengthSquared())
	}
	if math.Abs(v.Length()-13) > 1e-9 {
		t.Errorf("Expected length 13, got %f", v.Length())
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(0, 3, 4).Normalize()
	if math.Abs(v.Length()-1) > 1e-9 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", zero)
	}
}
