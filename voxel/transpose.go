package voxel

// transpose transposes the 32x32 bit matrix in place, so that afterwards
// bit z of word x holds what was bit x of word z before.
//
// This is the recursive block swap from Hacker's Delight (7-3), adapted to
// index bits starting at the least significant bit.
func transpose(mat *LayerMask) {
	m := uint32(0x0000FFFF)

	for j := 16; j != 0; j, m = j>>1, m^(m<<(j>>1)) {
		for k := 0; k < ChunkSize; k = (k + j + 1) &^ j {
			t := ((mat[k] >> j) ^ mat[k+j]) & m
			mat[k+j] ^= t
			mat[k] ^= t << j
		}
	}
}
