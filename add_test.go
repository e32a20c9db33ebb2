// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddArithmetic(t *testing.T) {
	requireT := require.New(t)

	m, err := New(2)
	requireT.NoError(err)

	x, y := m.AddIthVar(0), m.AddIthVar(1)
	sum := m.AddApply(AddPlus, x, y)

	requireT.Equal(0.0, m.AddEval(sum, map[int]bool{0: false, 1: false}))
	requireT.Equal(1.0, m.AddEval(sum, map[int]bool{0: true, 1: false}))
	requireT.Equal(1.0, m.AddEval(sum, map[int]bool{0: false, 1: true}))
	requireT.Equal(2.0, m.AddEval(sum, map[int]bool{0: true, 1: true}))

	product := m.AddApply(AddTimes, x, y)
	requireT.Equal(0.0, m.AddEval(product, map[int]bool{0: true, 1: false}))
	requireT.Equal(1.0, m.AddEval(product, map[int]bool{0: true, 1: true}))

	neg := m.AddNegate(x)
	requireT.Equal(-1.0, m.AddEval(neg, map[int]bool{0: true}))
	requireT.Equal(0.0, m.AddEval(neg, map[int]bool{0: false}))

	scaled := m.AddScalarMultiply(x, 3.5)
	requireT.Equal(3.5, m.AddEval(scaled, map[int]bool{0: true}))
}

func TestAddThreshold(t *testing.T) {
	requireT := require.New(t)

	m, err := New(2)
	requireT.NoError(err)

	x, y := m.AddIthVar(0), m.AddIthVar(1)
	sum := m.AddApply(AddPlus, x, y)

	above := m.AddThreshold(sum, 1.5)
	requireT.Equal(m.IthVar(1), m.Restrict(above, 0, true))
	requireT.Equal(m.False(), m.Restrict(above, 0, false))
}

func TestAddFindMaxMin(t *testing.T) {
	requireT := require.New(t)

	m, err := New(3)
	requireT.NoError(err)

	x, y, z := m.AddIthVar(0), m.AddIthVar(1), m.AddIthVar(2)
	f := m.AddApply(AddPlus, m.AddApply(AddPlus, x, m.AddScalarMultiply(y, 2)), m.AddScalarMultiply(z, 4))

	maxVal, maxAssign := m.AddFindMax(f)
	requireT.Equal(7.0, maxVal)
	requireT.Equal(m.AddEval(f, derefAssignment(maxAssign)), maxVal)

	minVal, minAssign := m.AddFindMin(f)
	requireT.Equal(0.0, minVal)
	requireT.Equal(m.AddEval(f, derefAssignment(minAssign)), minVal)
}

func derefAssignment(a map[int]*bool) map[int]bool {
	out := make(map[int]bool, len(a))
	for k, v := range a {
		out[k] = *v
	}
	return out
}

func TestAddRestrict(t *testing.T) {
	requireT := require.New(t)

	m, err := New(2)
	requireT.NoError(err)

	x, y := m.AddIthVar(0), m.AddIthVar(1)
	f := m.AddApply(AddPlus, x, y)

	restricted := m.AddRestrict(f, 0, true)
	requireT.Equal(1.0, m.AddEval(restricted, map[int]bool{1: false}))
	requireT.Equal(2.0, m.AddEval(restricted, map[int]bool{1: true}))
}
