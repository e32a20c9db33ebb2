// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package dd implements a Decision-Diagram engine supporting three reduced
ordered representations over one shared node store:

Binary Decision Diagrams (BDD) with complement edges, representing Boolean
functions over indexed variables; Algebraic Decision Diagrams (ADD),
representing functions from Boolean assignments to real numbers; and
Zero-suppressed Decision Diagrams (ZDD), representing families of subsets
over indexed elements.

Basics

A Manager has a fixed number of variables, declared when it is constructed
with New. Each variable is identified by an index in [0..Varnum) and occupies
a level in the variable ordering (identity ordering initially, and for the
lifetime of a Manager, since dynamic reordering is out of scope).

Every operation returns a Handle: a tagged reference to a node that encodes
both the node's position in the arena and, for BDDs only, whether the
function it denotes is complemented. Two handles that denote the same
function compare equal.

Automatic memory management

Node allocation is arena-based with free-list recycling, and unused nodes
are reclaimed by an explicit mark-and-sweep collector rather than relying
on any host-language GC. Client code that wants a handle to survive a call
to GC must Acquire it first; handles produced and consumed within a single
operation need no such bookkeeping, because the recursion keeps its own
operands alive on the Go call stack.
*/
package dd
