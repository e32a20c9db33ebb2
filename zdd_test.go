// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func normalizeSets(sets [][]int) [][]int {
	out := make([][]int, len(sets))
	for i, s := range sets {
		cp := append([]int{}, s...)
		sort.Ints(cp)
		out[i] = cp
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	return out
}

func TestZDDFromSetsToSetsRoundtrip(t *testing.T) {
	requireT := require.New(t)

	m, err := New(4)
	requireT.NoError(err)

	sets := [][]int{{0, 1}, {2}, {}, {0, 1, 2, 3}}
	f := m.ZDDFromSets(sets)

	got := normalizeSets(m.ZDDToSets(f))
	want := normalizeSets(sets)
	requireT.Equal(want, got)
}

func TestZDDUnionIntersectDifference(t *testing.T) {
	requireT := require.New(t)

	m, err := New(3)
	requireT.NoError(err)

	p := m.ZDDFromSets([][]int{{0}, {1}})
	q := m.ZDDFromSets([][]int{{1}, {2}})

	union := normalizeSets(m.ZDDToSets(m.ZDDUnion(p, q)))
	requireT.Equal(normalizeSets([][]int{{0}, {1}, {2}}), union)

	inter := normalizeSets(m.ZDDToSets(m.ZDDIntersect(p, q)))
	requireT.Equal(normalizeSets([][]int{{1}}), inter)

	diff := normalizeSets(m.ZDDToSets(m.ZDDDifference(p, q)))
	requireT.Equal(normalizeSets([][]int{{0}}), diff)
}

func TestZDDSubsets(t *testing.T) {
	requireT := require.New(t)

	m, err := New(3)
	requireT.NoError(err)

	f := m.ZDDFromSets([][]int{{0}, {0, 1}, {1}})

	without1 := normalizeSets(m.ZDDToSets(m.ZDDSubset0(f, 1)))
	requireT.Equal(normalizeSets([][]int{{0}}), without1)

	with1 := normalizeSets(m.ZDDToSets(m.ZDDSubset1(f, 1)))
	requireT.Equal(normalizeSets([][]int{{0}, {}}), with1)
}

func TestZDDChange(t *testing.T) {
	requireT := require.New(t)

	m, err := New(3)
	requireT.NoError(err)

	f := m.ZDDFromSets([][]int{{0}, {1}})
	changed := normalizeSets(m.ZDDToSets(m.ZDDChange(f, 0)))
	requireT.Equal(normalizeSets([][]int{{}, {0, 1}}), changed)
}

func TestZDDCount(t *testing.T) {
	requireT := require.New(t)

	m, err := New(4)
	requireT.NoError(err)

	f := m.ZDDFromSets([][]int{{0}, {1}, {2, 3}})
	requireT.Equal(int64(3), m.ZDDCount(f).Int64())
	requireT.Equal(int64(0), m.ZDDCount(m.ZDDEmpty()).Int64())
	requireT.Equal(int64(1), m.ZDDCount(m.ZDDBase()).Int64())
}
