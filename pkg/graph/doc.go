// Package graph provides the immutable weighted-graph model shared by the
// exact and approximate longest-path solvers.
//
// A [Graph] is built once from an edge list (or the text input format via
// [Read]) and never mutated afterwards, which makes it safe to share
// across concurrent solver attempts. Adjacency lists are pre-sorted by
// weight descending so that greedy scans are deterministic up to explicit
// tie-breaking.
//
// [Path] carries an ordered vertex sequence together with value
// recomputation and simplicity validation, used both by solvers and by
// tests that verify solver output.
package graph
