// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

import "github.com/samber/lo"

// AddConst returns the ADD terminal for value v, hash-consed by exact bit
// pattern so repeated constants share one node.
func (m *Manager) AddConst(v float64) Handle {
	return m.addConstNode(v)
}

// AddIthVar returns the 0/1-valued ADD for variable i: 1 on the then
// branch, 0 on the else branch.
func (m *Manager) AddIthVar(i int) Handle {
	if !m.checkVar(i) {
		return m.addConstNode(0)
	}
	lvl := m.levelOf[i]
	return m.lookupOrCreate(lvl, m.addConstNode(1), m.addConstNode(0))
}

// AddApply combines f and g terminal-by-terminal under op, synchronizing
// on the lower of the two roots' levels at every step (the ADD analogue
// of rudd/operations.go's apply, reading cofactors with rawThen/rawEls
// since ADD edges are never complemented).
func (m *Manager) AddApply(op AddOp, f, g Handle) Handle {
	if m.isTerminalHandle(f) && m.isTerminalHandle(g) {
		return m.addConstNode(op.apply(m.value(f), m.value(g)))
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
	fLo, fHi := f, f
	if p == lvl {
		fLo, fHi = m.rawEls(f), m.rawThen(f)
	}
	gLo, gHi := g, g
	if q == lvl {
		gLo, gHi = m.rawEls(g), m.rawThen(g)
	}
	lo := m.AddApply(op, fLo, gLo)
	hi := m.AddApply(op, fHi, gHi)
	res := m.lookupOrCreate(lvl, hi, lo)
	m.cache.insert(tag, f, g, noHandle, res)
	return res
}

// AddPlusOp, AddMinusOp, AddTimesOp, AddDivideOp, AddMaxOp and AddMinOp are
// the named arithmetic specializations a real ADD manager exposes
// alongside the generic AddApply, mirroring CUDD's
// Cudd_addApply(mgr, Cudd_addPlus, ...) style convenience wrappers.
func (m *Manager) AddPlusOp(f, g Handle) Handle  { return m.AddApply(AddPlus, f, g) }
func (m *Manager) AddMinusOp(f, g Handle) Handle { return m.AddApply(AddMinus, f, g) }
func (m *Manager) AddTimesOp(f, g Handle) Handle { return m.AddApply(AddTimes, f, g) }
func (m *Manager) AddDivideOp(f, g Handle) Handle { return m.AddApply(AddDivide, f, g) }
func (m *Manager) AddMaxOp(f, g Handle) Handle   { return m.AddApply(AddMax, f, g) }
func (m *Manager) AddMinOp(f, g Handle) Handle   { return m.AddApply(AddMin, f, g) }

// AddNegate returns the additive inverse of f.
func (m *Manager) AddNegate(f Handle) Handle {
	return m.AddApply(AddTimes, f, m.addConstNode(-1.0))
}

// AddScalarMultiply scales every terminal of f by k.
func (m *Manager) AddScalarMultiply(f Handle, k float64) Handle {
	return m.AddApply(AddTimes, f, m.addConstNode(k))
}

// AddThreshold builds the BDD that is true wherever f's terminal value is
// at least tau. tau is a continuous float64, so it cannot be folded into
// the shared (op, f, g, h) cache key; we keep a private per-call memo
// instead, the way Satcount keeps its own.
func (m *Manager) AddThreshold(f Handle, tau float64) Handle {
	memo := make(map[Handle]Handle)
	var rec func(Handle) Handle
	rec = func(h Handle) Handle {
		if m.isTerminalHandle(h) {
			if m.value(h) >= tau {
				return m.True()
			}
			return m.False()
		}
		if res, ok := memo[h]; ok {
			return res
		}
		lvl := m.level(h)
		lo := rec(m.rawEls(h))
		hi := rec(m.rawThen(h))
		res := m.lookupOrCreate(lvl, hi, lo)
		memo[h] = res
		return res
	}
	return rec(f)
}

// AddRestrict substitutes val for variable v in the ADD f.
func (m *Manager) AddRestrict(f Handle, v int, val bool) Handle {
	if !m.checkVar(v) {
		return m.addConstNode(0)
	}
	return m.addRestrict(f, m.levelOf[v], val)
}

func (m *Manager) addRestrict(f Handle, lvl int32, val bool) Handle {
	if m.isTerminalHandle(f) {
		return f
	}
	flvl := m.level(f)
	if flvl > lvl {
		return f
	}
	if flvl == lvl {
		if val {
			return m.rawThen(f)
		}
		return m.rawEls(f)
	}
	key := negateIf(val, handleOf(lvl))
	if res, ok := m.cache.lookup(opADDRestrict, f, key, noHandle); ok {
		return res
	}
	lo := m.addRestrict(m.rawEls(f), lvl, val)
	hi := m.addRestrict(m.rawThen(f), lvl, val)
	res := m.lookupOrCreate(flvl, hi, lo)
	m.cache.insert(opADDRestrict, f, key, noHandle, res)
	return res
}

// AddEval walks f down to a terminal under a full assignment, returning
// its value. Variables absent from assignment are treated as false.
func (m *Manager) AddEval(f Handle, assignment map[int]bool) float64 {
	cur := f
	for !m.isTerminalHandle(cur) {
		lvl := m.level(cur)
		v := int(m.varAt[lvl])
		if assignment[v] {
			cur = m.rawThen(cur)
		} else {
			cur = m.rawEls(cur)
		}
	}
	return m.value(cur)
}

// bestValue returns the best (max or min) terminal value reachable from
// h, memoized per call since the same subtree is revisited from many
// parents.
func (m *Manager) bestValue(h Handle, wantMax bool, memo map[Handle]float64) float64 {
	if m.isTerminalHandle(h) {
		return m.value(h)
	}
	if v, ok := memo[h]; ok {
		return v
	}
	lo := m.bestValue(m.rawEls(h), wantMax, memo)
	hi := m.bestValue(m.rawThen(h), wantMax, memo)
	res := lo
	if (wantMax && hi > lo) || (!wantMax && hi < lo) {
		res = hi
	}
	memo[h] = res
	return res
}

// addFindExtreme walks f along the branch leading to its best terminal,
// returning that value together with the partial assignment that reaches
// it. Only the variables actually tested on the path get an entry;
// lo.ToPtr marks each as a definite true/false rather than "don't care".
func (m *Manager) addFindExtreme(f Handle, wantMax bool) (float64, map[int]*bool) {
	memo := make(map[Handle]float64)
	assignment := make(map[int]*bool)
	cur := f
	for !m.isTerminalHandle(cur) {
		lvl := m.level(cur)
		v := int(m.varAt[lvl])
		loChild, hiChild := m.rawEls(cur), m.rawThen(cur)
		loVal := m.bestValue(loChild, wantMax, memo)
		hiVal := m.bestValue(hiChild, wantMax, memo)
		goHigh := hiVal >= loVal
		if !wantMax {
			goHigh = hiVal <= loVal
		}
		assignment[v] = lo.ToPtr(goHigh)
		if goHigh {
			cur = hiChild
		} else {
			cur = loChild
		}
	}
	return m.value(cur), assignment
}

// AddFindMax returns the largest terminal value in f and a path reaching
// it.
func (m *Manager) AddFindMax(f Handle) (float64, map[int]*bool) {
	return m.addFindExtreme(f, true)
}

// AddFindMin returns the smallest terminal value in f and a path reaching
// it.
func (m *Manager) AddFindMin(f Handle) (float64, map[int]*bool) {
	return m.addFindExtreme(f, false)
}
