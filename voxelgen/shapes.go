package voxelgen

import (
	"github.com/oliverbestmann/voxelmesh/glm"
	"github.com/oliverbestmann/voxelmesh/voxel"
)

// Sphere fills all voxels whose center lies within Radius of Center.
type Sphere struct {
	Center glm.Vec3f
	Radius float32
	Colour voxel.ColourIdx
}

func (s Sphere) Chunk(offset glm.Vec3i) voxel.ChunkToAdd {
	origin := glm.Vec3Convert[float32](chunkOrigin(offset))

	layers := make([]voxel.Layer, voxel.ChunkSize)

	for y := range voxel.ChunkSize {
		for z := range voxel.ChunkSize {
			for x := range voxel.ChunkSize {
				center := origin.Add(glm.Vec3f{float32(x) + 0.5, float32(y) + 0.5, float32(z) + 0.5})
				if center.Sub(s.Center).Length() > s.Radius {
					continue
				}

				layers[y].Set(x, z, s.Colour+1)
			}
		}
	}

	return trim(layers)
}

// Fill generates chunks with Height solid layers starting at YStart.
type Fill struct {
	YStart uint8
	Height int
	Colour voxel.ColourIdx
}

func (f Fill) Chunk(glm.Vec3i) voxel.ChunkToAdd {
	height := min(f.Height, voxel.ChunkSize-int(f.YStart))

	layers := make([]voxel.Layer, max(height, 0))
	for idx := range layers {
		for cell := range layers[idx] {
			layers[idx][cell] = f.Colour + 1
		}
	}

	return voxel.ChunkToAdd{Layers: layers, YStart: f.YStart}
}
