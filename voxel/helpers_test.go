package voxel

import (
	"math/rand/v2"
	"testing"

	"github.com/oliverbestmann/voxelmesh/glm"
	"github.com/stretchr/testify/require"
)

type faceCell struct {
	Chunk int
	Face  Face
	Pos   uint16
}

// solidLayer returns a layer with every cell set to value.
func solidLayer(value ColourIdx) Layer {
	var layer Layer
	for idx := range layer {
		layer[idx] = value
	}

	return layer
}

func solidLayers(count int, value ColourIdx) []Layer {
	layers := make([]Layer, count)
	for idx := range layers {
		layers[idx] = solidLayer(value)
	}

	return layers
}

func randomLayers(rng *rand.Rand, count int, density float32, colours int) []Layer {
	layers := make([]Layer, count)
	for idx := range layers {
		for cell := range layers[idx] {
			if rng.Float32() < density {
				layers[idx][cell] = ColourIdx(1 + rng.IntN(colours))
			}
		}
	}

	return layers
}

func randomChunk(rng *rand.Rand) ChunkToAdd {
	yStart := rng.IntN(ChunkSize)
	yLen := 1 + rng.IntN(min(4, ChunkSize-yStart))
	density := rng.Float32()

	return ChunkToAdd{
		Layers: randomLayers(rng, yLen, density, 1+rng.IntN(3)),
		YStart: uint8(yStart),
	}
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// cellAt resolves a chunk local coordinate that might lie outside of the
// chunk to the value stored in the world, zero if nothing is loaded there.
func cellAt(chunks *Chunks, self ChunkRef, x, y, z int) ColourIdx {
	cx, cy, cz := floorDiv(x, ChunkSize), floorDiv(y, ChunkSize), floorDiv(z, ChunkSize)

	ref := self.DataRef
	if cx != 0 || cy != 0 || cz != 0 {
		var ok bool
		ref, ok = chunks.Find(self.Offset.Add(glm.Vec3i{int32(cx), int32(cy), int32(cz)}))
		if !ok {
			return 0
		}
	}

	lx, ly, lz := x-cx*ChunkSize, y-cy*ChunkSize, z-cz*ChunkSize

	layers := chunks.Data.LayersOf(ref)
	if ly < layers.YStart || ly >= layers.YStart+len(layers.Layers) {
		return 0
	}

	return layers.Layers[ly-layers.YStart].Get(lx, lz)
}

// referenceFaces checks every voxel against each of its six neighbours and
// returns every exposed face with the colour index of its voxel.
func referenceFaces(chunks *Chunks) map[faceCell]ColourIdx {
	faces := map[faceCell]ColourIdx{}

	for chunkIdx, ref := range chunks.Refs() {
		layers := chunks.Data.LayersOf(ref.DataRef)

		for layerIdx := range layers.Layers {
			y := layers.YStart + layerIdx

			for z := range ChunkSize {
				for x := range ChunkSize {
					value := layers.Layers[layerIdx].Get(x, z)
					if value == 0 {
						continue
					}

					for face := range Face(FaceCount) {
						n := face.Normal()
						if cellAt(chunks, ref, x+int(n[0]), y+int(n[1]), z+int(n[2])) != 0 {
							continue
						}

						key := faceCell{Chunk: chunkIdx, Face: face, Pos: PackPos(x, y, z)}
						faces[key] = value - 1
					}
				}
			}
		}
	}

	return faces
}

// coveredFaces expands the surfaces into single voxel faces and
// fails the test if any face is covered twice.
func coveredFaces(t *testing.T, surfaces []VoxelSurface) map[faceCell]ColourIdx {
	t.Helper()

	faces := map[faceCell]ColourIdx{}

	for _, surface := range surfaces {
		x, _, z := surface.Pos()

		// a run must not leave the chunk
		if surface.Face.RunAxisShift() == 5 {
			require.Less(t, z+int(surface.Extent), ChunkSize, "surface %+v", surface)
		} else {
			require.Less(t, x+int(surface.Extent), ChunkSize, "surface %+v", surface)
		}

		for _, pos := range surface.Cells() {
			key := faceCell{Chunk: int(surface.ChunkIdx), Face: surface.Face, Pos: pos}

			_, exists := faces[key]
			require.False(t, exists, "face %+v covered twice", key)

			faces[key] = surface.ColourIdx
		}
	}

	return faces
}

// requireExactCover verifies that the surfaces partition the exposed faces
// and that every surface has the colour of all voxels it covers.
func requireExactCover(t *testing.T, chunks *Chunks, surfaces []VoxelSurface) {
	t.Helper()

	expected := referenceFaces(chunks)
	actual := coveredFaces(t, surfaces)

	require.Equal(t, len(expected), len(actual))
	require.Equal(t, expected, actual)
}
