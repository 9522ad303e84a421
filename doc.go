// Package allpairs generates sets of test-input combinations from a group of
// parameters, each holding several interchangeable partitions of values,
// while honoring compatibility rules between values of different parameters.
//
// Typical use is as follows:
//
//  1. Declare a Parameter for each input dimension, listing its value
//     partitions (constant, computed or cycling)
//  2. Declare Rules constraining which partitions may appear together
//  3. Create a Generator
//  4. Use the generator to produce a Table, either Pairwise (a heuristic
//     cover of every compatible pair) or Combinatorial (every compatible
//     combination, optionally capped)
//  5. Iterate the table, or export its rows to a test runner
//
// # Rules and Propagation
//
// A Rule is a symmetric predicate over two partitions. It is declared on one
// parameter but may examine the partitions of others; the generator
// propagates each rule to every parameter it names, so a compatibility query
// issued from either side of a pair finds it. Because of this, the predicate
// must not depend on argument order.
//
// Rules written as Go functions declare the parameters they examine
// explicitly. The cel subpackage lets rules be authored as CEL expressions
// instead, which is convenient when rules are loaded from configuration.
//
// # Parameter and Partition Ownership
//
// A partition belongs to exactly one parameter, set when the parameter is
// constructed. Attempting to reuse a partition in a second parameter is an
// error. The calling application must not modify parameters, partitions or
// rules while a generation run is in progress.
//
// Generation itself is a single-threaded batch computation; the only shared
// mutable state is the cycling partition's cursor, which is safe to advance
// from concurrent test executions.
package allpairs
