package voxel

import "github.com/oliverbestmann/voxelmesh/glm"

//go:generate go tool stringer -type=Face -trimprefix=Face

// Face is the direction a surface is facing.
type Face uint8

const (
	FaceXNeg Face = iota
	FaceXPos
	FaceYNeg
	FaceYPos
	FaceZNeg
	FaceZPos
)

const FaceCount = 6

var faceNormals = [FaceCount]glm.Vec3i{
	FaceXNeg: glm.UnitX.Neg(),
	FaceXPos: glm.UnitX,
	FaceYNeg: glm.UnitY.Neg(),
	FaceYPos: glm.UnitY,
	FaceZNeg: glm.UnitZ.Neg(),
	FaceZPos: glm.UnitZ,
}

// Normal returns the unit vector pointing out of the face.
func (f Face) Normal() glm.Vec3i {
	return faceNormals[f]
}

// RunAxisShift returns the bit offset within a packed position of the axis
// a merged run of this face extends along: Z for the ±X faces, X otherwise.
func (f Face) RunAxisShift() uint {
	if f == FaceXNeg || f == FaceXPos {
		return 5
	}

	return 0
}

// VoxelSurface is a rectangular patch of one voxel width, extending
// Extent+1 voxels along the run axis of its Face. The layout matches
// the struct consumed by the surface shader.
type VoxelSurface struct {
	// packed position of the negative-most end of the surface
	InnerPos  uint16
	Face      Face
	Extent    uint8
	ChunkIdx  uint16
	ColourIdx ColourIdx
}

// PackPos packs chunk local coordinates as y<<10 | z<<5 | x.
func PackPos(x, y, z int) uint16 {
	return uint16(y<<10 | z<<5 | x)
}

func UnpackPos(pos uint16) (x, y, z int) {
	x = int(pos & 0x1F)
	z = int(pos>>5) & 0x1F
	y = int(pos >> 10)
	return
}

// Pos returns the chunk local coordinate of the minimum corner.
func (s VoxelSurface) Pos() (x, y, z int) {
	return UnpackPos(s.InnerPos)
}

// Cells returns the packed positions of all voxels covered by the surface.
func (s VoxelSurface) Cells() []uint16 {
	shift := s.Face.RunAxisShift()

	cells := make([]uint16, 0, int(s.Extent)+1)
	for i := range int(s.Extent) + 1 {
		cells = append(cells, s.InnerPos+uint16(i)<<shift)
	}

	return cells
}

type Stats struct {
	// number of surfaces per face
	Surfaces [FaceCount]int

	// number of voxel faces covered per face
	Faces [FaceCount]int
}

func (s Stats) TotalSurfaces() int {
	var total int
	for _, count := range s.Surfaces {
		total += count
	}

	return total
}

func (s Stats) TotalFaces() int {
	var total int
	for _, count := range s.Faces {
		total += count
	}

	return total
}

func Summarize(surfaces []VoxelSurface) Stats {
	var stats Stats

	for _, surface := range surfaces {
		stats.Surfaces[surface.Face] += 1
		stats.Faces[surface.Face] += int(surface.Extent) + 1
	}

	return stats
}
