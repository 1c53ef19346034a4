// Package tdk implements a generic decision-diagram engine parameterized
// over a variable domain V, a value lattice L, and a result semiring R.
//
// The engine represents functions from assignments of variables to
// lattice values into a result semiring as reduced ordered decision
// diagrams ("Branch(v, l, t, f)": if the assignment to v satisfies l,
// take branch t, else branch f), maintains them in a hash-consed pool
// (package intern) so that structural equality of diagrams reduces to
// integer-id equality, and implements the algebraic operations Sum and
// Prod (the semiring operators lifted pointwise to diagrams) plus
// Restrict (specialization by a partial assignment).
//
// Construct an Engine with New, passing instances of the three contract
// types Variable[V], Lattice[L], and Semiring[R]. An Engine is not safe
// for concurrent use: the recommended usage pattern is one Engine per
// goroutine.
package tdk
