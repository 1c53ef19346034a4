// Package intern provides a generic hash-consing bimap: a persistent
// interner that canonicalizes values of type T under a caller-supplied
// equivalence relation and hands back small integer ids in their place.
//
// Unlike anyunique.Set, which reclaims unreferenced entries via weak
// pointers, an Interner never forgets a value until Clear is called: it
// is built for callers (decision-diagram node stores, in particular)
// that need a stable reverse mapping from id back to value and a hard
// guarantee that the same id is never reused for two different values
// without an explicit Clear in between.
package intern

import (
	"hash/maphash"

	"golang.org/x/xerrors"
)

// A Hasher defines a hash function and an equivalence relation over
// values of type T. Hash must write a hash of its argument to the
// provided *maphash.Hash, and Equal must report whether two values are
// equivalent. Hash and Equal must be consistent: if Equal(x, y) is true
// then Hash must produce the same output for x and y.
type Hasher[T any] interface {
	Hash(*maphash.Hash, T)
	Equal(x, y T) bool
}

// ErrUnknownID is returned by Unget when called with an id that was
// never handed out by Get (or was handed out before the most recent
// Clear).
var ErrUnknownID = xerrors.New("intern: unknown id")

// An Interner canonicalizes values of type T, assigning each distinct
// (according to h) value a small, monotonically increasing integer id
// starting at 0. The zero Interner is not ready for use; construct one
// with New.
//
// An Interner is not safe for concurrent use: callers must serialize
// all access, including calls to Unget.
type Interner[T any] struct {
	h      Hasher[T]
	seed   maphash.Seed
	values []T               // id -> value; the reverse map
	byHash map[uint64][]int64 // content hash -> ids sharing that hash; the forward map
}

// New returns a new, empty Interner that canonicalizes values of type T
// using h to determine hash and equality.
func New[T any](h Hasher[T]) *Interner[T] {
	return &Interner[T]{
		h:      h,
		seed:   maphash.MakeSeed(),
		byHash: make(map[uint64][]int64),
	}
}

// Get returns the id for v, allocating a fresh one if v has not been
// seen (according to the Interner's Hasher) since construction or the
// last Clear. Get never fails.
func (in *Interner[T]) Get(v T) int64 {
	hv := in.hashOf(v)
	for _, id := range in.byHash[hv] {
		if in.h.Equal(v, in.values[id]) {
			return id
		}
	}
	id := int64(len(in.values))
	in.values = append(in.values, v)
	in.byHash[hv] = append(in.byHash[hv], id)
	return id
}

// Unget returns the value previously associated with id by Get. It
// fails with ErrUnknownID if id was never returned by Get, or was
// returned before the most recent Clear.
func (in *Interner[T]) Unget(id int64) (T, error) {
	if id < 0 || id >= int64(len(in.values)) {
		var zero T
		return zero, xerrors.Errorf("intern: id %d: %w", id, ErrUnknownID)
	}
	return in.values[id], nil
}

// Clear empties the Interner and resets its id counter to 0. All ids
// returned by Get before the call become invalid.
func (in *Interner[T]) Clear() {
	in.values = nil
	in.byHash = make(map[uint64][]int64)
}

// Len reports the number of values currently interned.
func (in *Interner[T]) Len() int {
	return len(in.values)
}

func (in *Interner[T]) hashOf(v T) uint64 {
	var h maphash.Hash
	h.SetSeed(in.seed)
	in.h.Hash(&h, v)
	return h.Sum64()
}
