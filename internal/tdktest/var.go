// Package tdktest holds concrete Variable/Lattice/Semiring
// instantiations used across the tdk test suite. They are kept
// internal, not exported from the module: like V, L, and R
// themselves, they are domain instantiations rather than engine
// surface; the engine only ever sees them through the tdk.Variable,
// tdk.Lattice, and tdk.Semiring contracts.
package tdktest

import (
	"cmp"
	"hash/maphash"
)

// varSeed is fixed once per process so that OrderedVar's Hash is
// consistent across calls within a run, the same way ctrie.go fixes a
// package-level maphash.Seed for its StringHash/BytesHash helpers.
var varSeed = maphash.MakeSeed()

// OrderedVar implements tdk.Variable[T] for any cmp.Ordered type,
// mirroring anyhash.ComparableHasher's "stateless adapter for a type
// that's already comparable/ordered" shape.
type OrderedVar[T cmp.Ordered] struct{}

func (OrderedVar[T]) Compare(x, y T) int { return cmp.Compare(x, y) }

func (OrderedVar[T]) Hash(v T) uint64 {
	var h maphash.Hash
	h.SetSeed(varSeed)
	maphash.WriteComparable(&h, v)
	return h.Sum64()
}
