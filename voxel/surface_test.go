package voxel

import (
	"testing"

	"github.com/oliverbestmann/voxelmesh/glm"
	"github.com/stretchr/testify/assert"
)

func TestPackPos(t *testing.T) {
	pos := PackPos(31, 17, 5)
	assert.Equal(t, uint16(17<<10|5<<5|31), pos)

	x, y, z := UnpackPos(pos)
	assert.Equal(t, []int{31, 17, 5}, []int{x, y, z})

	x, y, z = UnpackPos(PackPos(0, 0, 0))
	assert.Equal(t, []int{0, 0, 0}, []int{x, y, z})
}

func TestFace(t *testing.T) {
	assert.Equal(t, "XNeg", FaceXNeg.String())
	assert.Equal(t, "ZPos", FaceZPos.String())
	assert.Equal(t, "Face(6)", Face(6).String())

	assert.Equal(t, glm.Vec3i{-1, 0, 0}, FaceXNeg.Normal())
	assert.Equal(t, glm.Vec3i{0, 1, 0}, FaceYPos.Normal())
	assert.Equal(t, glm.Vec3i{0, 0, -1}, FaceZNeg.Normal())

	assert.Equal(t, uint(5), FaceXPos.RunAxisShift())
	assert.Equal(t, uint(0), FaceZPos.RunAxisShift())
}

func TestCells(t *testing.T) {
	alongZ := VoxelSurface{InnerPos: PackPos(3, 2, 10), Face: FaceXNeg, Extent: 2}
	assert.Equal(t, []uint16{PackPos(3, 2, 10), PackPos(3, 2, 11), PackPos(3, 2, 12)}, alongZ.Cells())

	alongX := VoxelSurface{InnerPos: PackPos(30, 0, 0), Face: FaceYPos, Extent: 1}
	assert.Equal(t, []uint16{PackPos(30, 0, 0), PackPos(31, 0, 0)}, alongX.Cells())
}

func TestSummarize(t *testing.T) {
	stats := Summarize([]VoxelSurface{
		{Face: FaceXNeg, Extent: 31},
		{Face: FaceXNeg, Extent: 0},
		{Face: FaceZPos, Extent: 4},
	})

	assert.Equal(t, 2, stats.Surfaces[FaceXNeg])
	assert.Equal(t, 33, stats.Faces[FaceXNeg])
	assert.Equal(t, 5, stats.Faces[FaceZPos])
	assert.Equal(t, 3, stats.TotalSurfaces())
	assert.Equal(t, 38, stats.TotalFaces())
}
