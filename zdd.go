// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

import (
	"math/big"
	"sort"

	"github.com/samber/lo"
)

// ZDDEmpty returns the empty family of sets.
func (m *Manager) ZDDEmpty() Handle { return m.False() }

// ZDDBase returns the family containing only the empty set.
func (m *Manager) ZDDBase() Handle { return m.True() }

// ZDDSingleton returns the family containing only the set {v}.
func (m *Manager) ZDDSingleton(v int) Handle {
	if !m.checkVar(v) {
		return m.ZDDEmpty()
	}
	lvl := m.levelOf[v]
	return m.zddLookupOrCreate(lvl, m.ZDDBase(), m.ZDDEmpty())
}

// zddApply is the shared recursion behind Union/Intersect/Difference. A
// node whose own level is below the current sync level is treated as
// having an empty then-branch at that level, since ZDD suppression means
// "this variable is absent from every set here" rather than "don't care"
// (unlike the BDD apply in bdd.go).
func (m *Manager) zddApply(op zddOp, f, g Handle) Handle {
	switch op {
	case zddUnion:
		switch {
		case f == g:
			return f
		case f == m.ZDDEmpty():
			return g
		case g == m.ZDDEmpty():
			return f
		}
	case zddIntersect:
		switch {
		case f == g:
			return f
		case f == m.ZDDEmpty() || g == m.ZDDEmpty():
			return m.ZDDEmpty()
		}
	case zddDiff:
		switch {
		case f == g:
			return m.ZDDEmpty()
		case f == m.ZDDEmpty():
			return m.ZDDEmpty()
		case g == m.ZDDEmpty():
			return f
		}
	}

	tag := op.tag()
	if res, ok := m.cache.lookup(tag, f, g, noHandle); ok {
		return res
	}
	p, q := m.level(f), m.level(g)
	lvl := p
	if q < lvl {
		lvl = q
	}
	fLo, fHi := f, m.ZDDEmpty()
	if p == lvl {
		fLo, fHi = m.rawEls(f), m.rawThen(f)
	}
	gLo, gHi := g, m.ZDDEmpty()
	if q == lvl {
		gLo, gHi = m.rawEls(g), m.rawThen(g)
	}
	lo := m.zddApply(op, fLo, gLo)
	hi := m.zddApply(op, fHi, gHi)
	res := m.zddLookupOrCreate(lvl, hi, lo)
	m.cache.insert(tag, f, g, noHandle, res)
	return res
}

// ZDDUnion returns the family of sets in f or g.
func (m *Manager) ZDDUnion(f, g Handle) Handle { return m.zddApply(zddUnion, f, g) }

// ZDDIntersect returns the family of sets in both f and g.
func (m *Manager) ZDDIntersect(f, g Handle) Handle { return m.zddApply(zddIntersect, f, g) }

// ZDDDifference returns the family of sets in f but not g.
func (m *Manager) ZDDDifference(f, g Handle) Handle { return m.zddApply(zddDiff, f, g) }

// ZDDSubset0 returns the sets of f that do not contain v.
func (m *Manager) ZDDSubset0(f Handle, v int) Handle {
	if !m.checkVar(v) {
		return m.ZDDEmpty()
	}
	return m.zddSubset0(f, m.levelOf[v])
}

func (m *Manager) zddSubset0(f Handle, lvl int32) Handle {
	if m.isTerminalHandle(f) {
		return f
	}
	flvl := m.level(f)
	if flvl > lvl {
		return f
	}
	if flvl == lvl {
		return m.rawEls(f)
	}
	key := handleOf(lvl)
	if res, ok := m.cache.lookup(opZDDSubset0, f, key, noHandle); ok {
		return res
	}
	lo := m.zddSubset0(m.rawEls(f), lvl)
	hi := m.zddSubset0(m.rawThen(f), lvl)
	res := m.zddLookupOrCreate(flvl, hi, lo)
	m.cache.insert(opZDDSubset0, f, key, noHandle, res)
	return res
}

// ZDDSubset1 returns the sets S\{v} for every S in f that contains v.
func (m *Manager) ZDDSubset1(f Handle, v int) Handle {
	if !m.checkVar(v) {
		return m.ZDDEmpty()
	}
	return m.zddSubset1(f, m.levelOf[v])
}

func (m *Manager) zddSubset1(f Handle, lvl int32) Handle {
	if m.isTerminalHandle(f) {
		return m.ZDDEmpty()
	}
	flvl := m.level(f)
	if flvl > lvl {
		return m.ZDDEmpty()
	}
	if flvl == lvl {
		return m.rawThen(f)
	}
	key := handleOf(lvl)
	if res, ok := m.cache.lookup(opZDDSubset1, f, key, noHandle); ok {
		return res
	}
	lo := m.zddSubset1(m.rawEls(f), lvl)
	hi := m.zddSubset1(m.rawThen(f), lvl)
	res := m.zddLookupOrCreate(flvl, hi, lo)
	m.cache.insert(opZDDSubset1, f, key, noHandle, res)
	return res
}

// ZDDChange toggles membership of v in every set of f: sets without v
// gain it, sets with v lose it (CUDD's Cudd_zddChange).
func (m *Manager) ZDDChange(f Handle, v int) Handle {
	if !m.checkVar(v) {
		return m.ZDDEmpty()
	}
	return m.zddChange(f, m.levelOf[v])
}

func (m *Manager) zddChange(f Handle, lvl int32) Handle {
	if m.isTerminalHandle(f) {
		if f == m.ZDDEmpty() {
			return m.ZDDEmpty()
		}
		return m.zddLookupOrCreate(lvl, m.ZDDBase(), m.ZDDEmpty())
	}
	flvl := m.level(f)
	if flvl > lvl {
		return m.zddLookupOrCreate(lvl, f, m.ZDDEmpty())
	}
	if flvl == lvl {
		return m.zddLookupOrCreate(lvl, m.rawEls(f), m.rawThen(f))
	}
	key := handleOf(lvl)
	if res, ok := m.cache.lookup(opZDDChange, f, key, noHandle); ok {
		return res
	}
	lo := m.zddChange(m.rawEls(f), lvl)
	hi := m.zddChange(m.rawThen(f), lvl)
	res := m.zddLookupOrCreate(flvl, hi, lo)
	m.cache.insert(opZDDChange, f, key, noHandle, res)
	return res
}

// ZDDCount returns the exact number of sets in the family f. Unlike
// Satcount, a suppressed ZDD level contributes no multiplicative factor —
// it means the variable is forced absent, not a don't-care — so this is a
// plain path count to the base terminal.
func (m *Manager) ZDDCount(f Handle) *big.Int {
	memo := make(map[Handle]*big.Int)
	return m.zddCount(f, memo)
}

func (m *Manager) zddCount(f Handle, memo map[Handle]*big.Int) *big.Int {
	if f == m.ZDDEmpty() {
		return big.NewInt(0)
	}
	if f == m.ZDDBase() {
		return big.NewInt(1)
	}
	if res, ok := memo[f]; ok {
		return res
	}
	res := new(big.Int).Add(m.zddCount(m.rawEls(f), memo), m.zddCount(m.rawThen(f), memo))
	memo[f] = res
	return res
}

// zddFromSet builds the single-set family {vars}, deduplicating repeated
// variables with lo.Uniq and threading the path bottom-up from the base
// terminal so each new node's level stays below its child's.
func (m *Manager) zddFromSet(vars []int) Handle {
	levels := make([]int32, 0, len(vars))
	for _, v := range vars {
		if !m.checkVar(v) {
			return m.ZDDEmpty()
		}
		levels = append(levels, m.levelOf[v])
	}
	levels = lo.Uniq(levels)
	sort.Slice(levels, func(i, j int) bool { return levels[i] > levels[j] })

	cur := m.ZDDBase()
	for _, lvl := range levels {
		cur = m.zddLookupOrCreate(lvl, cur, m.ZDDEmpty())
	}
	return cur
}

// ZDDFromSets builds the family containing exactly the given sets of
// variable indices.
func (m *Manager) ZDDFromSets(sets [][]int) Handle {
	res := m.ZDDEmpty()
	for _, s := range sets {
		res = m.ZDDUnion(res, m.zddFromSet(s))
	}
	return res
}

// ZDDToSets enumerates every set in the family f as a slice of variable
// indices. The order of both the outer and inner slices is unspecified.
func (m *Manager) ZDDToSets(f Handle) [][]int {
	var results [][]int
	var walk func(h Handle, acc []int)
	walk = func(h Handle, acc []int) {
		if h == m.ZDDEmpty() {
			return
		}
		if h == m.ZDDBase() {
			results = append(results, acc)
			return
		}
		lvl := m.level(h)
		v := int(m.varAt[lvl])
		walk(m.rawEls(h), acc)
		next := make([]int, len(acc), len(acc)+1)
		copy(next, acc)
		walk(m.rawThen(h), append(next, v))
	}
	walk(f, nil)
	return results
}
