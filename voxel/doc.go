// Package voxel turns chunks of coloured voxels into a compact list of
// rectangular surfaces for instanced rendering.
//
// A chunk is a column of up to 32 layers, each layer a 32x32 grid of colour
// indices. Visible faces are found with bitwise operations on one row of 32
// voxels at a time, then adjacent faces of the same colour are merged into runs.
package voxel
