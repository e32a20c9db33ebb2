// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

// cacheEntry is a single slot of the memoization cache. A dedicated
// occupied flag marks a filled slot, so a zero-valued key is never taken
// for a stored entry.
type cacheEntry struct {
	occupied bool
	op       opTag
	f, g, h  Handle
	res      Handle
}

// memo is the direct-mapped memoization cache shared by every kernel.
// Lookup hashes (op, f, g, h) to a single slot; a hit requires the stored
// key to match exactly, otherwise it is treated as a miss (spec §4.4).
type memo struct {
	table []cacheEntry
}

func newMemo(size int) *memo {
	size = nextPow2(size)
	if size < 1 {
		size = 1
	}
	return &memo{table: make([]cacheEntry, size)}
}

func (m *memo) slot(op opTag, f, g, h Handle) *cacheEntry {
	idx := hashQuad(op, f, g, h) & uint64(len(m.table)-1)
	return &m.table[idx]
}

func (m *memo) lookup(op opTag, f, g, h Handle) (Handle, bool) {
	e := m.slot(op, f, g, h)
	if e.occupied && e.op == op && e.f == f && e.g == g && e.h == h {
		return e.res, true
	}
	return noHandle, false
}

func (m *memo) insert(op opTag, f, g, h, res Handle) {
	e := m.slot(op, f, g, h)
	*e = cacheEntry{occupied: true, op: op, f: f, g: g, h: h, res: res}
}

// clear invalidates every entry. Must be called after every GC pass since
// stored handles may now refer to freed nodes (spec §4.4).
func (m *memo) clear() {
	for i := range m.table {
		m.table[i] = cacheEntry{}
	}
}
