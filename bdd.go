// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

import "math/big"

// IthVar returns the BDD for the positive literal of variable v.
func (m *Manager) IthVar(v int) Handle {
	if !m.checkVar(v) {
		return m.False()
	}
	lvl := m.levelOf[v]
	return m.lookupOrCreate(lvl, m.True(), m.False())
}

// NIthVar returns the BDD for the negative literal of variable v.
func (m *Manager) NIthVar(v int) Handle {
	if !m.checkVar(v) {
		return m.False()
	}
	lvl := m.levelOf[v]
	return m.lookupOrCreate(lvl, m.False(), m.True())
}

// Not negates f. Since BDD handles carry a complement bit, negation is a
// pointer-tag flip: no allocation, no cache lookup, matching CUDD's
// Cudd_Not.
func (m *Manager) Not(f Handle) Handle {
	return complement(f)
}

func min3(p, q, r int32) int32 {
	if p <= q {
		if p <= r {
			return p
		}
		return r
	}
	if q <= r {
		return q
	}
	return r
}

// ITE computes the BDD for (f /\ g) \/ (not f /\ h) directly, rather than
// as three separate Apply calls.
func (m *Manager) ITE(f, g, h Handle) Handle {
	switch {
	case f == m.True():
		return g
	case f == m.False():
		return h
	case g == h:
		return g
	case g == m.True() && h == m.False():
		return f
	case g == m.False() && h == m.True():
		return m.Not(f)
	}
	if res, ok := m.cache.lookup(opBDDIte, f, g, h); ok {
		return res
	}
	p, q, r := m.level(f), m.level(g), m.level(h)
	lvl := min3(p, q, r)

	fLo, fHi := f, f
	if p == lvl {
		fLo, fHi = m.els(f), m.then(f)
	}
	gLo, gHi := g, g
	if q == lvl {
		gLo, gHi = m.els(g), m.then(g)
	}
	hLo, hHi := h, h
	if r == lvl {
		hLo, hHi = m.els(h), m.then(h)
	}

	lo := m.ITE(fLo, gLo, hLo)
	hi := m.ITE(fHi, gHi, hHi)
	res := m.lookupOrCreate(lvl, hi, lo)
	m.cache.insert(opBDDIte, f, g, h, res)
	return res
}

// applyBDD is the shared recursion behind And/Or/Xor: terminal shortcuts
// per operator, then a level-synchronized descent cached under the
// operator's own tag (rudd/operations.go's apply, rewritten for tagged
// handles and a single shared cache).
func (m *Manager) applyBDD(op BDDOp, f, g Handle) Handle {
	switch op {
	case BDDAnd:
		switch {
		case f == g:
			return f
		case f == m.False() || g == m.False():
			return m.False()
		case f == m.True():
			return g
		case g == m.True():
			return f
		}
	case BDDOr:
		switch {
		case f == g:
			return f
		case f == m.True() || g == m.True():
			return m.True()
		case f == m.False():
			return g
		case g == m.False():
			return f
		}
	case BDDXor:
		switch {
		case f == g:
			return m.False()
		case f == m.False():
			return g
		case g == m.False():
			return f
		case f == m.True():
			return m.Not(g)
		case g == m.True():
			return m.Not(f)
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
	fLo, fHi := f, f
	if p == lvl {
		fLo, fHi = m.els(f), m.then(f)
	}
	gLo, gHi := g, g
	if q == lvl {
		gLo, gHi = m.els(g), m.then(g)
	}
	lo := m.applyBDD(op, fLo, gLo)
	hi := m.applyBDD(op, fHi, gHi)
	res := m.lookupOrCreate(lvl, hi, lo)
	m.cache.insert(tag, f, g, noHandle, res)
	return res
}

// And returns the conjunction of f and g.
func (m *Manager) And(f, g Handle) Handle { return m.applyBDD(BDDAnd, f, g) }

// Or returns the disjunction of f and g.
func (m *Manager) Or(f, g Handle) Handle { return m.applyBDD(BDDOr, f, g) }

// Xor returns the exclusive-or of f and g.
func (m *Manager) Xor(f, g Handle) Handle { return m.applyBDD(BDDXor, f, g) }

// Restrict substitutes val for variable v in f.
func (m *Manager) Restrict(f Handle, v int, val bool) Handle {
	if !m.checkVar(v) {
		return m.False()
	}
	return m.restrict(f, m.levelOf[v], val)
}

func (m *Manager) restrict(f Handle, lvl int32, val bool) Handle {
	if m.isTerminalHandle(f) {
		return f
	}
	flvl := m.level(f)
	if flvl > lvl {
		return f
	}
	if flvl == lvl {
		if val {
			return m.then(f)
		}
		return m.els(f)
	}
	key := negateIf(val, handleOf(lvl))
	if res, ok := m.cache.lookup(opBDDRestrict, f, key, noHandle); ok {
		return res
	}
	lo := m.restrict(m.els(f), lvl, val)
	hi := m.restrict(m.then(f), lvl, val)
	res := m.lookupOrCreate(flvl, hi, lo)
	m.cache.insert(opBDDRestrict, f, key, noHandle, res)
	return res
}

// makeCube builds the BDD cube (conjunction of positive literals) for
// vars, the way rudd's Makeset does, so Exist/Forall can be expressed over
// a set represented as a node rather than a raw slice.
func (m *Manager) makeCube(vars []int) Handle {
	res := m.True()
	for _, v := range vars {
		if !m.checkVar(v) {
			return m.False()
		}
		res = m.And(res, m.IthVar(v))
	}
	return res
}

// quantSetFromCube walks a cube's then-chain once and records which
// levels it quantifies, the way rudd's quantset2cache precomputes
// b.quantset before a quant/appquant pass.
func (m *Manager) quantSetFromCube(cube Handle) ([]bool, int32) {
	inSet := make([]bool, m.nVars)
	maxLevel := int32(-1)
	cur := cube
	for !m.isTerminalHandle(cur) {
		lvl := m.level(cur)
		inSet[lvl] = true
		if lvl > maxLevel {
			maxLevel = lvl
		}
		cur = m.then(cur)
	}
	return inSet, maxLevel
}

func (m *Manager) quant(f Handle, op opTag) Handle {
	if m.isTerminalHandle(f) {
		return f
	}
	lvl := m.level(f)
	if lvl > m.quantMaxLevel {
		return f
	}
	if res, ok := m.cache.lookup(op, f, m.quantCubeHandle, noHandle); ok {
		return res
	}
	lo := m.quant(m.els(f), op)
	hi := m.quant(m.then(f), op)
	var res Handle
	if m.quantSet[lvl] {
		if op == opBDDExist {
			res = m.Or(lo, hi)
		} else {
			res = m.And(lo, hi)
		}
	} else {
		res = m.lookupOrCreate(lvl, hi, lo)
	}
	m.cache.insert(op, f, m.quantCubeHandle, noHandle, res)
	return res
}

// Exist returns the existential quantification of f over vars.
func (m *Manager) Exist(f Handle, vars []int) Handle {
	cube := m.makeCube(vars)
	if cube == m.True() {
		return f
	}
	m.quantSet, m.quantMaxLevel = m.quantSetFromCube(cube)
	m.quantCubeHandle = cube
	return m.quant(f, opBDDExist)
}

// Forall returns the universal quantification of f over vars.
func (m *Manager) Forall(f Handle, vars []int) Handle {
	cube := m.makeCube(vars)
	if cube == m.True() {
		return f
	}
	m.quantSet, m.quantMaxLevel = m.quantSetFromCube(cube)
	m.quantCubeHandle = cube
	return m.quant(f, opBDDForall)
}

// Replacer maps the level of a variable being substituted out to the
// level of its replacement, mirroring rudd's Replacer.
type Replacer interface {
	Replace(level int32) (int32, bool)
	Id() int
}

var nextReplacerID = 1

type levelReplacer struct {
	id    int
	image []int32
	last  int32
}

func (r *levelReplacer) Replace(level int32) (int32, bool) {
	if level > r.last {
		return level, false
	}
	return r.image[level], true
}

func (r *levelReplacer) Id() int { return r.id }

// NewReplacer returns a Replacer substituting oldvars[k] with newvars[k]
// for every k, operating on variable levels directly since handles carry
// no flavor tag beyond the complement bit.
func (m *Manager) NewReplacer(oldvars, newvars []int) (Replacer, error) {
	if len(oldvars) != len(newvars) {
		return nil, ErrReplacerLengthMismatch
	}
	r := &levelReplacer{id: nextReplacerID}
	nextReplacerID++
	image := make([]int32, m.nVars)
	for k := range image {
		image[k] = int32(k)
	}
	seen := make([]bool, m.nVars)
	for k, v := range oldvars {
		if !m.checkVar(v) {
			return nil, ErrVarOutOfRange
		}
		if !m.checkVar(newvars[k]) {
			return nil, ErrVarOutOfRange
		}
		oldLvl, newLvl := m.levelOf[v], m.levelOf[newvars[k]]
		if seen[oldLvl] {
			return nil, ErrReplacerDuplicateVar
		}
		seen[oldLvl] = true
		image[oldLvl] = newLvl
		if oldLvl > r.last {
			r.last = oldLvl
		}
	}
	r.image = image
	return r, nil
}

// Replace computes f after substituting variables according to r.
func (m *Manager) Replace(f Handle, r Replacer) Handle {
	return m.replace(f, r)
}

func (m *Manager) replace(f Handle, r Replacer) Handle {
	if m.isTerminalHandle(f) {
		return f
	}
	image, ok := r.Replace(m.level(f))
	if !ok {
		return f
	}
	key := handleOf(int32(r.Id()))
	if res, ok := m.cache.lookup(opBDDReplace, f, key, noHandle); ok {
		return res
	}
	lo := m.replace(m.els(f), r)
	hi := m.replace(m.then(f), r)
	res := m.correctify(image, lo, hi)
	m.cache.insert(opBDDReplace, f, key, noHandle, res)
	return res
}

// correctify rebuilds a node at the target level once its cofactors have
// themselves been replaced, re-merging levels that replacement may have
// put out of order (rudd/replace.go's correctify).
func (m *Manager) correctify(level int32, lo, hi Handle) Handle {
	loLvl, hiLvl := m.level(lo), m.level(hi)
	if level < loLvl && level < hiLvl {
		return m.lookupOrCreate(level, hi, lo)
	}
	if level == loLvl || level == hiLvl {
		m.seterrorf("replace produced a level collision (%d)", level)
		return m.False()
	}
	if loLvl == hiLvl {
		left := m.correctify(level, m.els(lo), m.els(hi))
		right := m.correctify(level, m.then(lo), m.then(hi))
		return m.lookupOrCreate(loLvl, right, left)
	}
	if loLvl < hiLvl {
		left := m.correctify(level, m.els(lo), hi)
		right := m.correctify(level, m.then(lo), hi)
		return m.lookupOrCreate(loLvl, right, left)
	}
	left := m.correctify(level, lo, m.els(hi))
	right := m.correctify(level, lo, m.then(hi))
	return m.lookupOrCreate(hiLvl, right, left)
}

// Satcount returns the exact number of satisfying assignments of f over
// all Varnum variables, as an arbitrary-precision integer (rudd's
// Satcount, kept literally since double-precision overflow is exactly the
// failure mode it exists to avoid).
func (m *Manager) Satcount(f Handle) *big.Int {
	res := big.NewInt(0)
	res.SetBit(res, int(m.level(f)), 1)
	memo := make(map[Handle]*big.Int)
	return res.Mul(res, m.satcount(f, memo))
}

func (m *Manager) satcount(f Handle, memo map[Handle]*big.Int) *big.Int {
	if f == m.False() {
		return big.NewInt(0)
	}
	if f == m.True() {
		return big.NewInt(1)
	}
	if res, ok := memo[f]; ok {
		return res
	}
	level := m.level(f)
	lo, hi := m.els(f), m.then(f)

	res := big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, int(m.level(lo)-level-1), 1)
	res.Add(res, two.Mul(two, m.satcount(lo, memo)))
	two = big.NewInt(0)
	two.SetBit(two, int(m.level(hi)-level-1), 1)
	res.Add(res, two.Mul(two, m.satcount(hi, memo)))
	memo[f] = res
	return res
}
