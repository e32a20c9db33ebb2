// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

import (
	"math"
	"math/big"
)

// CountNodes returns the number of distinct regular-node handles in the
// DAG rooted at f, visited once each via DFS; terminals are excluded from
// the total.
func (m *Manager) CountNodes(f Handle) int {
	visited := make(map[int32]bool)
	var walk func(h Handle)
	walk = func(h Handle) {
		if m.isTerminalHandle(h) {
			return
		}
		idx := indexOf(h)
		if visited[idx] {
			return
		}
		visited[idx] = true
		walk(m.rawThen(h))
		walk(m.rawEls(h))
	}
	walk(f)
	return len(visited)
}

// CountPaths returns the number of distinct root-to-ONE paths through f:
// paths(ZERO) = 0, paths(ONE) = 1, and every other node sums its two
// children's path counts. Children are read through the sign-aware
// then/els accessors (not rawThen/rawEls) so a complemented handle's
// count differs correctly from its regular counterpart's, and the memo
// is keyed by the full Handle, not just its arena index, for the same
// reason.
func (m *Manager) CountPaths(f Handle) *big.Int {
	memo := make(map[Handle]*big.Int)
	return m.countPaths(f, memo)
}

func (m *Manager) countPaths(h Handle, memo map[Handle]*big.Int) *big.Int {
	if h == m.False() {
		return big.NewInt(0)
	}
	if h == m.True() {
		return big.NewInt(1)
	}
	if res, ok := memo[h]; ok {
		return res
	}
	res := new(big.Int).Add(m.countPaths(m.then(h), memo), m.countPaths(m.els(h), memo))
	memo[h] = res
	return res
}

// CountMinterms returns the number of satisfying assignments of the BDD f
// over n Boolean variables, as a float64 density measure (CUDD's
// Cudd_CountMinterm(dd, node, nvars), kept alongside the exact
// big.Int-valued Satcount for callers that want a fast approximate
// count and accept double-precision overflow on very large diagrams).
func (m *Manager) CountMinterms(f Handle, n int) float64 {
	if f == m.False() {
		return 0
	}
	memo := make(map[Handle]float64)
	exp := float64(n) - float64(m.nVars) + float64(m.level(f))
	return math.Pow(2, exp) * m.countMinterms(f, memo)
}

func (m *Manager) countMinterms(f Handle, memo map[Handle]float64) float64 {
	if f == m.False() {
		return 0
	}
	if f == m.True() {
		return 1
	}
	if v, ok := memo[f]; ok {
		return v
	}
	level := m.level(f)
	lo, hi := m.els(f), m.then(f)
	v := math.Pow(2, float64(m.level(lo)-level-1))*m.countMinterms(lo, memo) +
		math.Pow(2, float64(m.level(hi)-level-1))*m.countMinterms(hi, memo)
	memo[f] = v
	return v
}
