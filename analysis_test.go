// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountNodes(t *testing.T) {
	requireT := require.New(t)

	m, err := New(3)
	requireT.NoError(err)

	requireT.Equal(0, m.CountNodes(m.True()))
	requireT.Equal(0, m.CountNodes(m.False()))

	a, b := m.IthVar(0), m.IthVar(1)
	f := m.And(a, b)
	// two internal nodes (a, b); terminals don't count
	requireT.Equal(2, m.CountNodes(f))

	// Not(f) shares every node with f via the complement bit.
	requireT.Equal(m.CountNodes(f), m.CountNodes(m.Not(f)))
}

func TestCountPaths(t *testing.T) {
	requireT := require.New(t)

	m, err := New(3)
	requireT.NoError(err)

	a, b := m.IthVar(0), m.IthVar(1)
	f := m.And(a, b)
	// a&b: exactly one root-to-ONE path (a=1, b=1).
	requireT.Equal(int64(1), m.CountPaths(f).Int64())
	requireT.Equal(int64(1), m.CountPaths(m.True()).Int64())
	requireT.Equal(int64(0), m.CountPaths(m.False()).Int64())

	// Or(a,b) reaches ONE via a=1 (regardless of b) or a=0,b=1: two paths.
	requireT.Equal(int64(2), m.CountPaths(m.Or(a, b)).Int64())
}

func TestCountMintermsMatchesSatcount(t *testing.T) {
	requireT := require.New(t)

	m, err := New(3)
	requireT.NoError(err)

	a, b := m.IthVar(0), m.IthVar(1)
	for _, f := range []Handle{m.True(), m.False(), a, m.And(a, b), m.Or(a, b), m.Xor(a, b)} {
		want := float64(m.Satcount(f).Int64())
		got := m.CountMinterms(f, m.Varnum())
		requireT.InDelta(want, got, 1e-9)
	}
}
