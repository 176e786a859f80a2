package voxelgen

import (
	"github.com/furui/fastnoiselite-go"
	"github.com/oliverbestmann/voxelmesh/glm"
	"github.com/oliverbestmann/voxelmesh/voxel"
)

// Heightmap generates terrain from 2d fractal noise. Every column is filled
// from world y=0 up to its height.
type Heightmap struct {
	// maximum terrain height in voxels
	MaxHeight int

	// colours from the bottom to the top of the terrain, banded by height
	Palette []voxel.ColourIdx

	noise *fastnoiselite.FastNoiseLite
}

func NewHeightmap(seed int, frequency float32, maxHeight int, palette []voxel.ColourIdx) *Heightmap {
	if len(palette) == 0 {
		palette = []voxel.ColourIdx{0}
	}

	noise := fastnoiselite.NewNoise()
	noise.Seed = int32(seed)
	noise.SetNoiseType(fastnoiselite.NoiseTypeOpenSimplex2)
	noise.FractalType = fastnoiselite.FractalTypeFBm
	noise.Frequency = float64(frequency)
	noise.SetFractalOctaves(3)

	return &Heightmap{
		MaxHeight: max(1, maxHeight),
		Palette:   palette,
		noise:     noise,
	}
}

// HeightAt returns the number of occupied voxels of the column at world (x, z),
// at least one and at most MaxHeight.
func (h *Heightmap) HeightAt(x, z int) int {
	value := float32(h.noise.GetNoise2D(fastnoiselite.FNLfloat(x), fastnoiselite.FNLfloat(z)))

	height := int((value + 1) * 0.5 * float32(h.MaxHeight))
	return min(max(height, 1), h.MaxHeight)
}

// ColourAt returns the palette colour for a voxel at world height y.
func (h *Heightmap) ColourAt(y int) voxel.ColourIdx {
	band := y * len(h.Palette) / h.MaxHeight
	return h.Palette[min(max(band, 0), len(h.Palette)-1)]
}

func (h *Heightmap) Chunk(offset glm.Vec3i) voxel.ChunkToAdd {
	origin := chunkOrigin(offset)

	layers := make([]voxel.Layer, voxel.ChunkSize)

	for z := range voxel.ChunkSize {
		for x := range voxel.ChunkSize {
			height := h.HeightAt(int(origin[0])+x, int(origin[2])+z)

			for y := range voxel.ChunkSize {
				worldY := int(origin[1]) + y
				if worldY < 0 || worldY >= height {
					continue
				}

				layers[y].Set(x, z, h.ColourAt(worldY)+1)
			}
		}
	}

	return trim(layers)
}
