// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

import (
	"math"
)

// protectedRefCount marks a node that Acquire/Release/GC must never
// reclaim: the shared BDD/ZDD terminal and every ADD constant. Unlike
// rudd, which also pins projection variables at _MAXREFCOUNT, a
// projection variable here is an ordinary node built through
// lookupOrCreate and is GC-eligible like any other if the caller never
// Acquires it.
const protectedRefCount = math.MaxInt32

// Manager owns the node arena, the per-level unique tables, the
// memoization cache, the variable ordering and the constants shared by the
// BDD, ADD and ZDD kernels built on top of it. A Manager is not safe for
// concurrent use (spec §5): every operation assumes exclusive access.
type Manager struct {
	nVars     int32
	termLevel int32
	levelOf   []int32
	varAt     []int32
	tables    []*uniqueTable // one per level, 0..nVars-1

	store *store
	cache *memo

	one Handle // regular handle to the shared BDD/ZDD terminal

	addTerminals map[uint64]Handle // math.Float64bits(v) -> handle, for ADD constants

	gcThreshold float64

	produced int // total nodes ever produced, for Stats
	gcCount  int

	err error

	// quant* hold the state of the variable set currently being
	// quantified out by Exist/Forall, set once per top-level call and
	// read by the recursive quant helper (mirrors rudd's
	// quantset/quantsetID/quantlast fields).
	quantSet        []bool
	quantMaxLevel   int32
	quantCubeHandle Handle
}

// New constructs a Manager with nVars variables (indices [0, nVars)),
// identity-ordered, and the given options applied on top of the defaults
// (spec §6: "manager(n_vars, cache_size)").
func New(nVars int, opts ...Option) (*Manager, error) {
	if nVars < 0 {
		return nil, ErrVarOutOfRange
	}
	cfg := defaultConfigs()
	for _, o := range opts {
		o(cfg)
	}

	m := &Manager{
		nVars:        int32(nVars),
		termLevel:    int32(nVars),
		levelOf:      make([]int32, nVars),
		varAt:        make([]int32, nVars),
		tables:       make([]*uniqueTable, nVars),
		store:        newStore(2*nVars + 2),
		cache:        newMemo(cfg.cacheSize),
		addTerminals: make(map[uint64]Handle),
		gcThreshold:  cfg.gcThreshold,
	}
	for v := int32(0); v < m.nVars; v++ {
		m.levelOf[v] = v
		m.varAt[v] = v
		m.tables[v] = newUniqueTable(cfg.bucketsPerLevel)
	}

	// index 0 is never allocated; index 1 is the shared terminal.
	idx := m.store.alloc()
	if idx != 1 {
		return nil, ErrStoreExhausted
	}
	t := m.store.get(1)
	t.level = m.termLevel
	t.then = handleOf(1)
	t.els = handleOf(1)
	t.value = 1.0
	t.refCount = protectedRefCount
	m.one = handleOf(1)

	return m, nil
}

// Varnum returns the number of variables this Manager was constructed
// with.
func (m *Manager) Varnum() int {
	return int(m.nVars)
}

// LevelOf returns the level currently assigned to variable v.
func (m *Manager) LevelOf(v int) int32 {
	return m.levelOf[v]
}

// VarAt returns the variable currently assigned to level.
func (m *Manager) VarAt(level int) int32 {
	return m.varAt[level]
}

// True returns the constant BDD/ZDD-base handle.
func (m *Manager) True() Handle {
	return m.one
}

// False returns the constant BDD/ZDD-empty handle.
func (m *Manager) False() Handle {
	return complement(m.one)
}

func (m *Manager) checkVar(v int) bool {
	if v < 0 || int32(v) >= m.nVars {
		m.seterrorf("variable index out of range (%d)", v)
		return false
	}
	return true
}

func (m *Manager) level(h Handle) int32 {
	return m.store.get(indexOf(h)).level
}

func (m *Manager) then(h Handle) Handle {
	n := m.store.get(indexOf(h))
	return negateIf(isComplemented(h), n.then)
}

func (m *Manager) els(h Handle) Handle {
	n := m.store.get(indexOf(h))
	return negateIf(isComplemented(h), n.els)
}

// rawThen/rawEls read a node's children without applying the caller's
// complement bit; used by the ZDD and ADD kernels, which never deal in
// complement edges.
func (m *Manager) rawThen(h Handle) Handle {
	return m.store.get(indexOf(h)).then
}

func (m *Manager) rawEls(h Handle) Handle {
	return m.store.get(indexOf(h)).els
}

func (m *Manager) value(h Handle) float64 {
	return m.store.get(indexOf(h)).value
}

func (m *Manager) isTerminalHandle(h Handle) bool {
	return m.store.get(indexOf(h)).level == m.termLevel
}

// lookupOrCreate implements the BDD unique-table operation of spec §4.3:
// Shannon-reduce if then == els, otherwise hash-cons at level. To keep one
// canonical node per function (so f and its complement never occupy two
// distinct arena slots), the then-edge is kept regular in the table; a
// request for a complemented then-edge is served by building the
// complemented function instead and flipping the result, the way CUDD's
// cuddBddIte normalizes on the then edge before consulting the unique
// table.
func (m *Manager) lookupOrCreate(level int32, then, els Handle) Handle {
	if then == els {
		return then
	}
	flip := isComplemented(then)
	if flip {
		then, els = complement(then), complement(els)
	}
	tbl := m.tables[level]
	var h Handle
	if idx := tbl.find(m.store, then, els); idx != 0 {
		h = handleOf(idx)
	} else {
		idx := m.store.alloc()
		n := m.store.get(idx)
		n.level = level
		n.then = then
		n.els = els
		tbl.insert(m.store, idx, then, els)
		m.produced++
		h = handleOf(idx)
	}
	return negateIf(flip, h)
}

// zddLookupOrCreate implements the ZDD unique-table operation of spec
// §4.3: suppress the node when its then-child is the empty family.
func (m *Manager) zddLookupOrCreate(level int32, then, els Handle) Handle {
	if then == m.False() {
		return els
	}
	tbl := m.tables[level]
	if idx := tbl.find(m.store, then, els); idx != 0 {
		return handleOf(idx)
	}
	idx := m.store.alloc()
	n := m.store.get(idx)
	n.level = level
	n.then = then
	n.els = els
	tbl.insert(m.store, idx, then, els)
	m.produced++
	return handleOf(idx)
}

// addConstNode hash-conses an ADD terminal by its exact bit pattern,
// independent of the per-level unique tables (terminals all share
// termLevel, so (then, els) cannot distinguish their values).
func (m *Manager) addConstNode(v float64) Handle {
	key := math.Float64bits(v)
	if h, ok := m.addTerminals[key]; ok {
		return h
	}
	idx := m.store.alloc()
	n := m.store.get(idx)
	n.level = m.termLevel
	n.then = handleOf(idx)
	n.els = handleOf(idx)
	n.value = v
	n.refCount = protectedRefCount
	h := handleOf(idx)
	m.addTerminals[key] = h
	m.produced++
	return h
}

// Stats returns a human-readable summary of arena usage and GC runs.
func (m *Manager) Stats() string {
	return statsString(m)
}
