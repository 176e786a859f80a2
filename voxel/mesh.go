package voxel

import (
	"log/slog"
	"math/bits"
	"time"
)

// CalculateSurfaces computes the merged visible surfaces of all loaded chunks.
// ChunkIdx of each surface is the index of its chunk in Refs.
func (c *Chunks) CalculateSurfaces() []VoxelSurface {
	startTime := time.Now()

	surfaces := make([]VoxelSurface, 0, 128)
	for idx := range c.refs {
		surfaces = c.appendChunkSurfaces(surfaces, idx, c.neighbours(idx))
	}

	slog.Debug("Calculated surfaces",
		slog.Int("chunks", len(c.refs)),
		slog.Int("surfaces", len(surfaces)),
		slog.Duration("duration", time.Since(startTime)),
	)

	return surfaces
}

// neighbours returns the index of the chunk adjacent to each face, or -1.
func (c *Chunks) neighbours(idx int) [FaceCount]int {
	var result [FaceCount]int

	offset := c.refs[idx].Offset
	for face := range Face(FaceCount) {
		result[face] = c.findIdx(offset.Add(face.Normal()))
	}

	return result
}

func (c *Chunks) dataRef(idx int) ChunkDataRef {
	if idx < 0 {
		return ZeroChunkDataRef
	}

	return c.refs[idx].DataRef
}

func (c *Chunks) appendChunkSurfaces(surfaces []VoxelSurface, chunkIdx int, neighbours [FaceCount]int) []VoxelSurface {
	ref := c.refs[chunkIdx].DataRef
	masks := c.Data.LayerMasksOf(ref)

	var neighbourMasks [FaceCount]LayerMaskRange
	for face, idx := range neighbours {
		neighbourMasks[face] = c.Data.LayerMasksOf(c.dataRef(idx))
	}

	merger := runMerger{
		surfaces: surfaces,
		layers:   c.Data.LayersOf(ref),
		chunkIdx: uint16(chunkIdx),
	}

	var faceL, faceR LayerMask

	for layerIdx := range masks.Masks {
		y := masks.YStart + layerIdx
		mask := &masks.Masks[layerIdx]

		below := neighbourMasks[FaceYNeg].Layer(ChunkSize - 1)
		if y > 0 {
			below = masks.Layer(y - 1)
		}

		above := neighbourMasks[FaceYPos].Layer(0)
		if y < ChunkSize-1 {
			above = masks.Layer(y + 1)
		}

		left := neighbourMasks[FaceXNeg].Layer(y)
		right := neighbourMasks[FaceXPos].Layer(y)

		// empty rows produce empty face rows, they must not keep
		// the values of the previous layer
		for z, row := range mask {
			rowL := (left[z] >> 31) ^ (row << 1)
			rowR := (right[z] << 31) ^ (row >> 1)

			faceL[z] = row &^ rowL
			faceR[z] = row &^ rowR
		}

		// runs of ±X faces extend along Z
		transpose(&faceL)
		transpose(&faceR)

		for x := range ChunkSize {
			base := PackPos(x, y, 0)
			merger.addRunLengths(faceL[x], FaceXNeg, base)
			merger.addRunLengths(faceR[x], FaceXPos, base)
		}

		back := neighbourMasks[FaceZNeg].Layer(y)
		front := neighbourMasks[FaceZPos].Layer(y)

		for z, row := range mask {
			if row == 0 {
				continue
			}

			rowB := back[ChunkSize-1]
			if z > 0 {
				rowB = mask[z-1]
			}

			rowF := front[0]
			if z < ChunkSize-1 {
				rowF = mask[z+1]
			}

			faceD := row &^ below[z]
			faceU := row &^ above[z]
			faceB := row &^ rowB
			faceF := row &^ rowF

			if faceD|faceU|faceB|faceF == 0 {
				continue
			}

			base := PackPos(0, y, z)
			merger.addRunLengths(faceD, FaceYNeg, base)
			merger.addRunLengths(faceU, FaceYPos, base)
			merger.addRunLengths(faceB, FaceZNeg, base)
			merger.addRunLengths(faceF, FaceZPos, base)
		}
	}

	return merger.surfaces
}

type runMerger struct {
	surfaces []VoxelSurface
	layers   LayerRange
	chunkIdx uint16
}

// addRunLengths emits a surface for each run of set bits in row. Bit i of row
// is the voxel at base + i<<face.RunAxisShift().
func (m *runMerger) addRunLengths(row uint32, face Face, base uint16) {
	shift := face.RunAxisShift()

	starts := row &^ (row << 1)
	ends := row &^ (row >> 1)

	for starts != 0 {
		start := bits.TrailingZeros32(starts)
		end := bits.TrailingZeros32(ends)

		starts &= starts - 1
		ends &= ends - 1

		m.addRun(face, base, shift, start, end)
	}
}

// addRun emits the run [start, end] as one surface per stretch of equal colour.
// A run spanning several colours yields several surfaces, so the number of
// surfaces may exceed the number of runs in a row.
func (m *runMerger) addRun(face Face, base uint16, shift uint, start, end int) {
	runStart := start
	runPos := base + uint16(start)<<shift
	colour := m.layers.TextureIdx(runPos)

	for i := start + 1; i <= end; i++ {
		pos := base + uint16(i)<<shift

		next := m.layers.TextureIdx(pos)
		if next == colour {
			continue
		}

		m.emit(face, runPos, i-1-runStart, colour)

		runStart = i
		runPos = pos
		colour = next
	}

	m.emit(face, runPos, end-runStart, colour)
}

func (m *runMerger) emit(face Face, pos uint16, extent int, colour ColourIdx) {
	m.surfaces = append(m.surfaces, VoxelSurface{
		InnerPos:  pos,
		Face:      face,
		Extent:    uint8(extent),
		ChunkIdx:  m.chunkIdx,
		ColourIdx: colour,
	})
}
