package voxel

import "fmt"

// ChunkSize is the extent of a chunk along each of the X, Y and Z axes.
const ChunkSize = 32

// LayerCells is the number of cells in a single layer.
const LayerCells = ChunkSize * ChunkSize

// ColourIdx indexes the colour palette. Inside a Layer, a cell value
// of zero marks an empty cell, any other value is the colour index plus one.
type ColourIdx = uint16

// Layer is a single Y slice of a chunk, addressed as z*32 + x.
type Layer [LayerCells]ColourIdx

// LayerMask holds the occupancy of a Layer: bit x of row z is set
// iff the cell at (x, z) is not empty.
type LayerMask [ChunkSize]uint32

// ZeroLayerMask is returned for every layer outside of a chunks loaded Y range.
var ZeroLayerMask LayerMask

// Set stores the given colour at (x, z). Use colour+1, zero clears the cell.
func (l *Layer) Set(x, z int, value ColourIdx) {
	l[z<<5|x] = value
}

func (l *Layer) Get(x, z int) ColourIdx {
	return l[z<<5|x]
}

// MaskOf derives the occupancy mask of the given layer.
func MaskOf(layer *Layer) LayerMask {
	var mask LayerMask

	for z := range ChunkSize {
		row := layer[z<<5:][:ChunkSize]

		var bits uint32
		for x, value := range row {
			if value != 0 {
				bits |= 1 << x
			}
		}

		mask[z] = bits
	}

	return mask
}

// ChunkData stores the layers of all loaded chunks in one flat sequence.
// LayerMasks[i] is always the occupancy of Layers[i].
type ChunkData struct {
	Layers     []Layer
	LayerMasks []LayerMask
}

// AddLayers appends the layers and their occupancy masks and
// returns the index of the first appended layer.
func (d *ChunkData) AddLayers(layers []Layer) uint16 {
	idx := len(d.Layers)
	if idx+len(layers) > 1<<16 {
		panic(fmt.Sprintf("chunk data overflow: %d layers exceed the 16 bit layer index", idx+len(layers)))
	}

	for i := range layers {
		d.LayerMasks = append(d.LayerMasks, MaskOf(&layers[i]))
	}

	d.Layers = append(d.Layers, layers...)

	return uint16(idx)
}

func (d *ChunkData) LayersOf(ref ChunkDataRef) LayerRange {
	start, end := ref.DataRange()

	return LayerRange{
		Layers: d.Layers[start:end],
		YStart: int(ref.YStart),
	}
}

func (d *ChunkData) LayerMasksOf(ref ChunkDataRef) LayerMaskRange {
	start, end := ref.DataRange()

	return LayerMaskRange{
		Masks:  d.LayerMasks[start:end],
		YStart: int(ref.YStart),
	}
}

// LayerRange is a view over the layers of one chunk.
type LayerRange struct {
	Layers []Layer

	// world Y of Layers[0]
	YStart int
}

// TextureIdx returns the colour index of the cell at the packed position.
// The cell must be occupied. Builds with the voxeldebug tag verify this.
func (r LayerRange) TextureIdx(innerPos uint16) ColourIdx {
	y := int(innerPos >> 10)
	value := r.Layers[y-r.YStart][innerPos&0x3FF]

	if debugChecks && value == 0 {
		x, _, z := UnpackPos(innerPos)
		panic(fmt.Sprintf("TextureIdx on empty cell x=%d y=%d z=%d", x, y, z))
	}

	return value - 1
}

// LayerMaskRange is a view over the occupancy masks of one chunk.
type LayerMaskRange struct {
	Masks []LayerMask

	// world Y of Masks[0]
	YStart int
}

func (r LayerMaskRange) Contains(y int) bool {
	return y >= r.YStart && y < r.YStart+len(r.Masks)
}

func (r LayerMaskRange) YRange() (start, end int) {
	return r.YStart, r.YStart + len(r.Masks)
}

// Layer returns the mask at world Y. Layers outside of the range
// are empty and return ZeroLayerMask.
func (r LayerMaskRange) Layer(y int) *LayerMask {
	if !r.Contains(y) {
		return &ZeroLayerMask
	}

	return &r.Masks[y-r.YStart]
}
