package voxel

import (
	"fmt"

	"github.com/oliverbestmann/voxelmesh/glm"
)

// ChunkDataRef selects the layers [BaseIndex, BaseIndex+YLen) of ChunkData.
// The first of those layers is located at world Y = YStart.
type ChunkDataRef struct {
	BaseIndex uint16
	YStart    uint8
	YLen      uint8
}

// ZeroChunkDataRef selects no layers. It stands in for missing neighbours.
var ZeroChunkDataRef = ChunkDataRef{}

func (r ChunkDataRef) DataRange() (start, end int) {
	start = int(r.BaseIndex)
	end = start + int(r.YLen)
	return
}

// ChunkRef links a chunks grid offset (in chunk units) to its layer data.
type ChunkRef struct {
	Offset  glm.Vec3i
	DataRef ChunkDataRef
}

type ChunkToAdd struct {
	Layers []Layer
	YStart uint8
}

// Chunks owns the layer data of all loaded chunks.
// Load must not be called concurrently with anything else.
type Chunks struct {
	Data ChunkData

	refs []ChunkRef

	// index of the first ref loaded at an offset
	index map[glm.Vec3i]int
}

func NewChunks() *Chunks {
	return &Chunks{
		index: map[glm.Vec3i]int{},
	}
}

// Load appends the given chunks. Existing chunks are never modified, not even
// if a new chunk is loaded at the offset of an existing one.
func (c *Chunks) Load(positions []glm.Vec3i, chunksToAdd []ChunkToAdd) {
	if len(positions) != len(chunksToAdd) {
		panic(fmt.Sprintf(
			"load chunks: positions and chunksToAdd must have the same length, got %d and %d",
			len(positions), len(chunksToAdd),
		))
	}

	if c.index == nil {
		c.index = map[glm.Vec3i]int{}
	}

	for idx, chunk := range chunksToAdd {
		if int(chunk.YStart)+len(chunk.Layers) > ChunkSize {
			panic(fmt.Sprintf(
				"load chunks: chunk at %v exceeds the chunk height: yStart=%d, layers=%d",
				positions[idx], chunk.YStart, len(chunk.Layers),
			))
		}

		if len(c.refs) >= 1<<16 {
			panic("load chunks: too many chunks for a 16 bit chunk index")
		}

		base := c.Data.AddLayers(chunk.Layers)

		ref := ChunkRef{
			Offset: positions[idx],
			DataRef: ChunkDataRef{
				BaseIndex: base,
				YStart:    chunk.YStart,
				YLen:      uint8(len(chunk.Layers)),
			},
		}

		if _, exists := c.index[ref.Offset]; !exists {
			c.index[ref.Offset] = len(c.refs)
		}

		c.refs = append(c.refs, ref)
	}
}

// Find returns the data of the first chunk loaded at exactly the given offset.
func (c *Chunks) Find(offset glm.Vec3i) (ChunkDataRef, bool) {
	idx := c.findIdx(offset)
	if idx < 0 {
		return ZeroChunkDataRef, false
	}

	return c.refs[idx].DataRef, true
}

func (c *Chunks) findIdx(offset glm.Vec3i) int {
	idx, ok := c.index[offset]
	if !ok {
		return -1
	}

	return idx
}

// Len returns the number of loaded chunks.
func (c *Chunks) Len() int {
	return len(c.refs)
}

// Refs returns the loaded chunks in load order. The slice must not be modified.
func (c *Chunks) Refs() []ChunkRef {
	return c.refs
}

// WorldPos returns the world voxel coordinate of the minimum corner of the surface.
func (c *Chunks) WorldPos(s VoxelSurface) glm.Vec3i {
	x, y, z := s.Pos()
	base := c.refs[s.ChunkIdx].Offset.MulScalar(ChunkSize)
	return base.Add(glm.Vec3i{int32(x), int32(y), int32(z)})
}
