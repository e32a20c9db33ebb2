// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

import "fmt"

// This example shows the basic usage of the package: create a manager,
// build a BDD out of Boolean connectives and count its satisfying
// assignments.
func Example_basic() {
	// A manager with 4 variables and a modest cache.
	m, _ := New(4, CacheSize(3000))
	// f == (x0 & x1) | x2
	f := m.Or(m.And(m.IthVar(0), m.IthVar(1)), m.IthVar(2))
	fmt.Printf("Number of sat. assignments: %s\n", m.Satcount(f))
	// Output:
	// Number of sat. assignments: 10
}
