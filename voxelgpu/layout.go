package voxelgpu

import (
	"github.com/oliverbestmann/voxelmesh/glm"
	"github.com/oliverbestmann/voxelmesh/pulse"
	"github.com/oliverbestmann/voxelmesh/voxel"
)

// GPUChunkRef mirrors the ChunkRef struct of expand.wgsl.
type GPUChunkRef struct {
	Offset [3]int32
	Data   voxel.ChunkDataRef
}

// Quad is a single surface, expanded to world space.
type Quad struct {
	Origin [4]float32
	Colour [4]float32
	Face   uint32
	Extent uint32
	_      [2]uint32
}

func ChunkRefs(chunks *voxel.Chunks) []GPUChunkRef {
	refs := make([]GPUChunkRef, 0, chunks.Len())
	for _, ref := range chunks.Refs() {
		refs = append(refs, GPUChunkRef{
			Offset: [3]int32(ref.Offset),
			Data:   ref.DataRef,
		})
	}

	return refs
}

func Palette(colors []pulse.Color) [][4]float32 {
	palette := make([][4]float32, 0, len(colors))
	for _, color := range colors {
		palette = append(palette, color.ToWGPU())
	}

	return palette
}

// ExpandQuads computes on the cpu what the expand pass computes on the gpu.
func ExpandQuads(chunks *voxel.Chunks, surfaces []voxel.VoxelSurface, palette [][4]float32) []Quad {
	quads := make([]Quad, 0, len(surfaces))

	for _, surface := range surfaces {
		origin := chunks.WorldPos(surface)

		var colour [4]float32
		if len(palette) > 0 {
			colour = palette[min(int(surface.ColourIdx), len(palette)-1)]
		}

		quads = append(quads, Quad{
			Origin: glm.Vec3Convert[float32](origin).Extend(1).ToWGPU(),
			Colour: colour,
			Face:   uint32(surface.Face),
			Extent: uint32(surface.Extent),
		})
	}

	return quads
}
