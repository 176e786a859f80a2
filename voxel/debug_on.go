//go:build voxeldebug

package voxel

const debugChecks = true
