package voxel

import (
	"log/slog"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// surfaceKey identifies everything the surfaces of a chunk depend on.
// Chunk data is never modified after loading, so the surfaces of a chunk only
// change if a neighbour gets loaded, which changes the key.
type surfaceKey struct {
	chunk      int
	neighbours [FaceCount]int
}

// Mesher incrementally recomputes the surfaces of a Chunks instance,
// reusing the per chunk results of previous calls.
type Mesher struct {
	chunks *Chunks
	cache  *lru.Cache[surfaceKey, []VoxelSurface]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMesher creates a Mesher caching the surfaces of up to size chunks.
func NewMesher(chunks *Chunks, size int) *Mesher {
	if size <= 0 {
		size = 1024
	}

	// only fails for non positive sizes
	cache, _ := lru.New[surfaceKey, []VoxelSurface](size)

	return &Mesher{
		chunks: chunks,
		cache:  cache,
	}
}

// Surfaces returns the same surfaces as Chunks.CalculateSurfaces.
func (m *Mesher) Surfaces() []VoxelSurface {
	var hits, misses uint64

	surfaces := make([]VoxelSurface, 0, 128)
	for idx := range m.chunks.refs {
		key := surfaceKey{chunk: idx, neighbours: m.chunks.neighbours(idx)}

		chunkSurfaces, ok := m.cache.Get(key)
		if ok {
			hits += 1
		} else {
			misses += 1
			chunkSurfaces = m.chunks.appendChunkSurfaces(nil, idx, key.neighbours)
			m.cache.Add(key, chunkSurfaces)
		}

		surfaces = append(surfaces, chunkSurfaces...)
	}

	m.hits.Add(hits)
	m.misses.Add(misses)

	slog.Debug("Meshed chunks",
		slog.Uint64("cached", hits),
		slog.Uint64("computed", misses),
		slog.Int("surfaces", len(surfaces)),
	)

	return surfaces
}

func (m *Mesher) Hits() uint64 {
	return m.hits.Load()
}

func (m *Mesher) Misses() uint64 {
	return m.misses.Load()
}

// Purge drops all cached surfaces.
func (m *Mesher) Purge() {
	m.cache.Purge()
}
