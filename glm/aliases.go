package glm

type Vec3f = Vec3[float32]
type Vec4f = Vec4[float32]

// Vec3i addresses cells of an integer grid, e.g. chunk offsets.
type Vec3i = Vec3[int32]

type Vec3u = Vec3[uint32]
type Vec3uh = Vec3[uint16]
