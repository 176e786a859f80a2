//go:build !voxeldebug

package voxel

const debugChecks = false
