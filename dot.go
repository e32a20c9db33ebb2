// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package dd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
)

// statsString returns a human-readable summary of arena usage and GC
// runs, the way rudd's bdd.stats does.
func statsString(m *Manager) string {
	total := m.store.size()
	res := fmt.Sprintf("Varnum:     %d\n", m.nVars)
	res += fmt.Sprintf("Allocated:  %d\n", total)
	res += fmt.Sprintf("Produced:   %d\n", m.produced)
	res += fmt.Sprintf("Live:       %d\n", m.store.live)
	res += fmt.Sprintf("Dead:       %d\n", m.store.dead)
	res += fmt.Sprintf("GC runs:    %d", m.gcCount)
	return res
}

// nodesReachable collects the arena indices reachable from the roots,
// walking both children unconditionally (DOT export shows the structure
// as stored, not as any one root's complement view).
func (m *Manager) nodesReachable(roots []Handle) []int32 {
	visited := map[int32]bool{1: true}
	var walk func(idx int32)
	walk = func(idx int32) {
		if visited[idx] {
			return
		}
		visited[idx] = true
		n := m.store.get(idx)
		if n.level == m.termLevel {
			return
		}
		walk(indexOf(n.then))
		walk(indexOf(n.els))
	}
	for _, h := range roots {
		walk(indexOf(h))
	}
	idxs := make([]int32, 0, len(visited))
	for idx := range visited {
		idxs = append(idxs, idx)
	}
	sort.Slice(idxs, func(i, j int) bool { return idxs[i] < idxs[j] })
	return idxs
}

// WriteDot writes a GraphViz description of the nodes reachable from
// roots to w, in the format of rudd's print_dot: BDD/ZDD internal nodes
// are labeled with their variable, ADD terminals with their value. The
// then-edge is drawn solid, the else-edge dashed, and either gets an
// added dotted attribute when the stored child handle itself carries
// the complement bit (ADD edges never do; a ZDD edge does only when it
// points to the empty family, which is the complemented shared
// terminal). The shared terminal node is only drawn once even
// when both True and False roots are present.
func (m *Manager) WriteDot(w io.Writer, roots ...Handle) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, `1 [shape=box, label="1", style=filled, height=0.3, width=0.3];`)

	for _, idx := range m.nodesReachable(roots) {
		if idx == 1 {
			continue
		}
		n := m.store.get(idx)
		if n.level == m.termLevel {
			fmt.Fprintf(bw, "%d [shape=box, label=%q, style=filled, height=0.3, width=0.3];\n", idx, fmt.Sprint(n.value))
			continue
		}
		v := m.varAt[n.level]
		fmt.Fprintf(bw, "%d %s\n", idx, dotlabel(idx, v))
		if indexOf(n.els) != 0 {
			fmt.Fprintf(bw, "%d -> %d [style=%q];\n", idx, indexOf(n.els), edgeStyle("dashed", n.els))
		}
		if indexOf(n.then) != 0 {
			fmt.Fprintf(bw, "%d -> %d [style=%q];\n", idx, indexOf(n.then), edgeStyle("solid", n.then))
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// edgeStyle appends ",dotted" to base when child carries the complement
// bit.
func edgeStyle(base string, child Handle) string {
	if isComplemented(child) {
		return base + ",dotted"
	}
	return base
}

// PrintDot writes the DOT description of roots to stdout.
func (m *Manager) PrintDot(roots ...Handle) error {
	return m.WriteDot(os.Stdout, roots...)
}

func dotlabel(idx int32, v int32) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">x%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, v, idx)
}
