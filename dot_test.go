// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteDotBDD(t *testing.T) {
	requireT := require.New(t)

	m, err := New(2)
	requireT.NoError(err)

	a, b := m.IthVar(0), m.IthVar(1)
	f := m.And(a, b)

	var buf strings.Builder
	requireT.NoError(m.WriteDot(&buf, f))

	out := buf.String()
	requireT.True(strings.HasPrefix(out, "digraph G {\n"))
	requireT.True(strings.HasSuffix(out, "}\n"))
	requireT.Contains(out, `label="1"`)
	requireT.Contains(out, "x0")
	requireT.Contains(out, "x1")
	// a&b's else-edges lead to False, a complemented handle: dashed+dotted.
	requireT.Contains(out, "style=\"dashed,dotted\"")
	// both then-edges are regular: plain solid.
	requireT.Contains(out, "style=\"solid\"")
}

func TestWriteDotElseEdgeWithoutComplement(t *testing.T) {
	requireT := require.New(t)

	m, err := New(2)
	requireT.NoError(err)

	a, b := m.IthVar(0), m.IthVar(1)
	f := m.Or(a, b)

	var buf strings.Builder
	requireT.NoError(m.WriteDot(&buf, f))

	out := buf.String()
	// a's else-edge in a|b leads to the regular node b: plain dashed.
	requireT.Contains(out, "style=\"dashed\"")
}

func TestWriteDotADD(t *testing.T) {
	requireT := require.New(t)

	m, err := New(1)
	requireT.NoError(err)

	x := m.AddIthVar(0)
	f := m.AddScalarMultiply(x, 2.5)

	var buf strings.Builder
	requireT.NoError(m.WriteDot(&buf, f))

	out := buf.String()
	requireT.Contains(out, "2.5")
}
