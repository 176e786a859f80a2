// Package voxelgen generates chunk data to feed into voxel.Chunks.
package voxelgen

import (
	"github.com/oliverbestmann/voxelmesh/glm"
	"github.com/oliverbestmann/voxelmesh/voxel"
)

type Generator interface {
	// Chunk generates the layers of the chunk at the given chunk offset.
	Chunk(offset glm.Vec3i) voxel.ChunkToAdd
}

// Grid returns the chunk offsets of a box with x and z in [-radius, radius]
// and y in [0, height).
func Grid(radius, height int) []glm.Vec3i {
	var positions []glm.Vec3i

	for y := range height {
		for z := -radius; z <= radius; z++ {
			for x := -radius; x <= radius; x++ {
				positions = append(positions, glm.Vec3i{int32(x), int32(y), int32(z)})
			}
		}
	}

	return positions
}

// Generate generates one chunk per position.
func Generate(gen Generator, positions []glm.Vec3i) []voxel.ChunkToAdd {
	chunks := make([]voxel.ChunkToAdd, 0, len(positions))
	for _, pos := range positions {
		chunks = append(chunks, gen.Chunk(pos))
	}

	return chunks
}

// Load generates and loads one chunk per position.
func Load(chunks *voxel.Chunks, gen Generator, positions []glm.Vec3i) {
	chunks.Load(positions, Generate(gen, positions))
}

// trim drops empty layers at the bottom and the top of the chunk.
func trim(layers []voxel.Layer) voxel.ChunkToAdd {
	isEmpty := func(layer *voxel.Layer) bool {
		for _, value := range layer {
			if value != 0 {
				return false
			}
		}

		return true
	}

	start := 0
	for start < len(layers) && isEmpty(&layers[start]) {
		start++
	}

	if start == len(layers) {
		return voxel.ChunkToAdd{}
	}

	end := len(layers)
	for end > start && isEmpty(&layers[end-1]) {
		end--
	}

	return voxel.ChunkToAdd{
		Layers: layers[start:end],
		YStart: uint8(start),
	}
}

// chunkOrigin returns the world voxel position of the chunks minimum corner.
func chunkOrigin(offset glm.Vec3i) glm.Vec3i {
	return offset.MulScalar(voxel.ChunkSize)
}
