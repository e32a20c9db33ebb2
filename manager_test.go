// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewManagerBasics(t *testing.T) {
	requireT := require.New(t)

	m, err := New(5, CacheSize(1<<10), BucketsPerLevel(8))
	requireT.NoError(err)
	requireT.Equal(5, m.Varnum())
	requireT.NotEqual(m.True(), m.False())
	requireT.Equal(m.True(), m.Not(m.False()))
}

func TestNewRejectsNegativeVarnum(t *testing.T) {
	requireT := require.New(t)

	_, err := New(-1)
	requireT.ErrorIs(err, ErrVarOutOfRange)
}

func TestAcquireReleaseTracksLiveness(t *testing.T) {
	requireT := require.New(t)

	m, err := New(4)
	requireT.NoError(err)

	a, b := m.IthVar(0), m.IthVar(1)
	f := m.Acquire(m.And(a, b))
	requireT.Equal(f, m.And(a, b))

	before := m.store.live
	m.Release(f)
	requireT.Equal(before, m.store.live, "release alone must not shrink the arena")
	requireT.Equal(1, m.store.dead)
}

func TestGCReclaimsUnreferencedNodes(t *testing.T) {
	requireT := require.New(t)

	m, err := New(4)
	requireT.NoError(err)

	root := m.Acquire(m.And(m.IthVar(0), m.IthVar(1)))
	liveBefore := m.store.live

	// build and immediately drop a large, unacquired sub-bdd
	scratch := m.And(m.Or(m.IthVar(2), m.IthVar(3)), m.Not(m.IthVar(0)))
	_ = scratch

	m.GC()

	// root and the x1 node below it must survive; rebuilding a&b yields root.
	requireT.True(m.store.live <= liveBefore)
	requireT.Equal(m.And(m.IthVar(0), m.IthVar(1)), root)

	m.Release(root)
}

func TestMaybeGCRespectsThreshold(t *testing.T) {
	requireT := require.New(t)

	m, err := New(4, GCThreshold(0.5))
	requireT.NoError(err)

	gcCountBefore := m.gcCount
	m.MaybeGC()
	requireT.Equal(gcCountBefore, m.gcCount, "empty manager must never trigger a collection")
}

func TestManagerErrorAccumulation(t *testing.T) {
	requireT := require.New(t)

	m, err := New(3)
	requireT.NoError(err)
	requireT.False(m.Errored())

	m.IthVar(100)
	requireT.True(m.Errored())
	requireT.NotEmpty(m.Error())

	m.ClearError()
	requireT.False(m.Errored())
}

func TestCacheClearedAfterGC(t *testing.T) {
	requireT := require.New(t)

	m, err := New(4)
	requireT.NoError(err)

	a, b := m.IthVar(0), m.IthVar(1)
	_ = m.And(a, b)
	m.GC()
	for _, e := range m.cache.table {
		requireT.False(e.occupied)
	}
}
