package tdk

// Variable describes the contract the engine requires of a variable
// domain V: a total order consistent with Hash, used to keep branch
// keys ordered along every root-to-leaf path. An Engine takes a single
// instance of Variable[V] at construction, the same way anyhash.Map and
// anyunique.Set take a stateless Hasher instance rather than requiring
// V itself to implement the methods.
type Variable[V any] interface {
	// Compare returns a negative number, zero, or a positive number
	// as x is less than, equal to, or greater than y. It must be a
	// total order.
	Compare(x, y V) int

	// Hash returns a hash of v, consistent with Compare: if
	// Compare(x, y) == 0 then Hash(x) == Hash(y).
	Hash(v V) uint64
}

// Lattice describes the contract the engine requires of the lattice of
// variable values L.
type Lattice[L any] interface {
	// Compare is a total order over L, used to break ties among
	// branches that share a variable.
	Compare(x, y L) int

	// Hash returns a hash of l, consistent with Equal.
	Hash(l L) uint64

	// Equal reports whether x and y denote the same lattice element.
	Equal(x, y L) bool

	// SubsetEq reports whether every extension of x is also an
	// extension of y. It must be reflexive and transitive.
	SubsetEq(x, y L) bool

	// Meet returns the greatest lower bound of x and y. It returns
	// ok == false when the meet is empty (x and y are disjoint) or,
	// when tight is true, when the meet is non-empty but cannot be
	// represented as a single L value.
	Meet(x, y L, tight bool) (m L, ok bool)

	// Join returns the least upper bound of x and y, dual to Meet.
	Join(x, y L, tight bool) (j L, ok bool)
}

// Semiring describes the contract the engine requires of the result
// domain R: a semiring with distinguished Zero and One, associative and
// commutative Sum and Prod, a total order, and a hash.
type Semiring[R any] interface {
	// Compare is a total order over R.
	Compare(x, y R) int

	// Hash returns a hash of r, consistent with Compare.
	Hash(r R) uint64

	// Zero returns the additive identity / multiplicative absorbing
	// element.
	Zero() R

	// One returns the multiplicative identity.
	One() R

	// Sum returns x + y. Sum must be associative and commutative and
	// have Zero as its identity.
	Sum(x, y R) R

	// Prod returns x * y. Prod must be associative and commutative,
	// have One as its identity, and have Zero as its absorbing
	// element.
	Prod(x, y R) R
}
