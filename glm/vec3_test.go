package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Int(t *testing.T) {
	a := Vec3i{1, -2, 3}

	assert.Equal(t, Vec3i{2, -2, 3}, a.Add(UnitX))
	assert.Equal(t, Vec3i{1, -3, 3}, a.Sub(UnitY))
	assert.Equal(t, Vec3i{-1, 2, -3}, a.Neg())
	assert.Equal(t, Vec3i{2, -4, 6}, a.MulScalar(2))
	assert.Equal(t, int32(14), a.LengthSqr())
	assert.Equal(t, UnitZ, UnitX.Cross(UnitY))
}

func TestVec3Length(t *testing.T) {
	assert.InDelta(t, 5.0, Vec3f{3, 4, 0}.Length(), 1e-6)
	assert.InDelta(t, 3.0, Vec3i{1, 2, 2}.Length(), 1e-6)
}

func TestVec3Convert(t *testing.T) {
	f := Vec3Convert[float32](Vec3i{1, -2, 3})
	assert.Equal(t, Vec3f{1, -2, 3}, f)

	x, y, z := f.XYZ()
	assert.Equal(t, []float32{1, -2, 3}, []float32{x, y, z})
}

func TestVec4(t *testing.T) {
	v := Vec4f{1, 2, 3, 4}.Mul(Vec4f{2, 2, 2, 0.5})
	assert.Equal(t, [4]float32{2, 4, 6, 2}, v.ToWGPU())
	assert.Equal(t, Vec3f{2, 4, 6}, v.Truncate())
	assert.Equal(t, v, Vec3f{2, 4, 6}.Extend(2))
}
