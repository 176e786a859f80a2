package glm

type Vec3[T numeric] [3]T

var (
	UnitX = Vec3i{1, 0, 0}
	UnitY = Vec3i{0, 1, 0}
	UnitZ = Vec3i{0, 0, 1}
)

func Vec3Of[T numeric](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

func (lhs Vec3[T]) Add(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
		lhs[2] + rhs[2],
	}
}

func (lhs Vec3[T]) Sub(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
		lhs[2] - rhs[2],
	}
}

func (lhs Vec3[T]) MulScalar(s T) Vec3[T] {
	return Vec3[T]{
		lhs[0] * s,
		lhs[1] * s,
		lhs[2] * s,
	}
}

func (lhs Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-lhs[0], -lhs[1], -lhs[2]}
}

func (lhs Vec3[T]) Dot(rhs Vec3[T]) T {
	return lhs[0]*rhs[0] + lhs[1]*rhs[1] + lhs[2]*rhs[2]
}

func (lhs Vec3[T]) Cross(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[1]*rhs[2] - rhs[1]*lhs[2],
		lhs[2]*rhs[0] - rhs[2]*lhs[0],
		lhs[0]*rhs[1] - rhs[0]*lhs[1],
	}
}

func (lhs Vec3[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

// Length is computed in float32 precision, independent of T.
func (lhs Vec3[T]) Length() float32 {
	return sqrt(lhs.LengthSqr())
}

func (lhs Vec3[T]) XYZ() (x, y, z T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	return
}

func (lhs Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{lhs[0], lhs[1], lhs[2], w}
}

// Vec3Convert converts each component of v to the component type U.
func Vec3Convert[U, T numeric](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v[0]), U(v[1]), U(v[2])}
}
