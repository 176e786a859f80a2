package voxel

import (
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// CalculateSurfacesParallel computes the same surfaces in the same order as
// CalculateSurfaces, processing up to workers chunks at once.
// A non-positive number of workers uses GOMAXPROCS.
func (c *Chunks) CalculateSurfacesParallel(workers int) []VoxelSurface {
	startTime := time.Now()

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	perChunk := make([][]VoxelSurface, len(c.refs))

	var group errgroup.Group
	group.SetLimit(workers)

	for idx := range c.refs {
		group.Go(func() error {
			perChunk[idx] = c.appendChunkSurfaces(nil, idx, c.neighbours(idx))
			return nil
		})
	}

	// workers never fail
	_ = group.Wait()

	surfaces := concatSurfaces(perChunk)

	slog.Debug("Calculated surfaces in parallel",
		slog.Int("chunks", len(c.refs)),
		slog.Int("workers", workers),
		slog.Int("surfaces", len(surfaces)),
		slog.Duration("duration", time.Since(startTime)),
	)

	return surfaces
}

func concatSurfaces(perChunk [][]VoxelSurface) []VoxelSurface {
	var total int
	for _, surfaces := range perChunk {
		total += len(surfaces)
	}

	result := make([]VoxelSurface, 0, max(total, 128))
	for _, surfaces := range perChunk {
		result = append(result, surfaces...)
	}

	return result
}
