// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
)

// hashTriple hashes the (then, els) pair used to key a level's unique
// table. The level itself is not part of the key since each level owns a
// separate table (spec: "the level is implicit in the table").
func hashTriple(then, els Handle) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(then))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(els))
	return xxhash.Sum64(buf[:])
}

// hashQuad hashes the (op, f, g, h) key used by the memoization cache.
func hashQuad(op opTag, f, g, h Handle) uint64 {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(op))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(f))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(g))
	binary.LittleEndian.PutUint64(buf[24:32], uint64(h))
	return xxhash.Sum64(buf[:])
}

// nextPow2 returns the smallest power of two that is >= n, with a floor of 1.
func nextPow2(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
