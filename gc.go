// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

// Acquire increases the reference count of the node h refers to and
// returns h, so calls can be chained. Acquire on the shared terminal or on
// an ADD constant is a no-op (spec §4.5: acquire/release are named-root
// bookkeeping, and those nodes are never reclaimed).
func (m *Manager) Acquire(h Handle) Handle {
	n := m.store.get(indexOf(h))
	if n.refCount < protectedRefCount {
		n.refCount++
	}
	return h
}

// Release decreases the reference count of the node h refers to and
// returns h. Releasing past zero, or releasing a protected node, is a
// no-op.
func (m *Manager) Release(h Handle) Handle {
	n := m.store.get(indexOf(h))
	if n.refCount > 0 && n.refCount < protectedRefCount {
		n.refCount--
		if n.refCount == 0 {
			m.store.dead++
		}
	}
	return h
}

// MaybeGC runs a garbage collection pass if the dead/live ratio exceeds the
// Manager's configured threshold (spec §4.5, default 0.2).
func (m *Manager) MaybeGC() {
	if m.store.live == 0 {
		return
	}
	if float64(m.store.dead)/float64(m.store.live) > m.gcThreshold {
		m.GC()
	}
}

// GC runs an unconditional mark-and-sweep pass: every node reachable from a
// positively-referenced root is marked, every unmarked node is unlinked
// from its level's unique table and returned to the free list, and the
// memoization cache is cleared since it may hold handles to freed nodes
// (spec §4.10).
func (m *Manager) GC() {
	debugLogf("starting GC: live=%d dead=%d", m.store.live, m.store.dead)

	marked := make([]bool, m.store.size())
	for level := int32(0); level < m.nVars; level++ {
		m.tables[level].forEach(m.store, func(idx int32) {
			if m.store.get(idx).refCount > 0 {
				m.markFrom(idx, marked)
			}
		})
	}

	freed := 0
	for level := int32(0); level < m.nVars; level++ {
		tbl := m.tables[level]
		var toFree []int32
		tbl.forEach(m.store, func(idx int32) {
			if !marked[idx] {
				toFree = append(toFree, idx)
			}
		})
		for _, idx := range toFree {
			n := m.store.get(idx)
			tbl.remove(m.store, idx, n.then, n.els)
			m.store.free(idx)
			freed++
		}
	}
	m.store.dead = 0
	m.cache.clear()
	m.gcCount++

	debugLogf("end GC: freed=%d live=%d", freed, m.store.live)
}

func (m *Manager) markFrom(idx int32, marked []bool) {
	if idx == 0 || marked[idx] {
		return
	}
	marked[idx] = true
	n := m.store.get(idx)
	if n.level == m.termLevel {
		return
	}
	m.markFrom(indexOf(n.then), marked)
	m.markFrom(indexOf(n.els), marked)
}

// ClearCache invalidates the memoization cache without running a
// collection. Exposed directly since spec §6 lists clear_cache as part of
// the minimal public surface.
func (m *Manager) ClearCache() {
	m.cache.clear()
}
