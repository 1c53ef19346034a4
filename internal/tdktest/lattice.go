package tdktest

import (
	"fmt"
	"math/rand"
	"reflect"
)

// BoolLattice implements tdk.Lattice[bool]: the two-element lattice
// where an atom names exactly one of the two boolean values, subset_eq
// is equality, and meet/join are intersection/union of the underlying
// singleton sets. Two distinct atoms are always disjoint under Meet,
// and their Join is never representable as a single bool (the union
// {true, false} has no atom of its own).
type BoolLattice struct{}

func (BoolLattice) Compare(x, y bool) int {
	switch {
	case x == y:
		return 0
	case !x:
		return -1
	default:
		return 1
	}
}

func (BoolLattice) Hash(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func (BoolLattice) Equal(x, y bool) bool { return x == y }

func (BoolLattice) SubsetEq(x, y bool) bool { return x == y }

func (BoolLattice) Meet(x, y bool, tight bool) (bool, bool) {
	if x == y {
		return x, true
	}
	return false, false
}

func (BoolLattice) Join(x, y bool, tight bool) (bool, bool) {
	if x == y {
		return x, true
	}
	return false, false
}

// Interval is a half-open integer range [Lo, Hi). Zero-width or
// inverted intervals (Lo >= Hi) never appear as atoms; IntervalLattice
// never constructs one.
type Interval struct {
	Lo, Hi int
}

func (iv Interval) String() string { return fmt.Sprintf("[%d,%d)", iv.Lo, iv.Hi) }

// Generate implements testing/quick.Generator so Interval can appear
// as an argument to quick.Check-driven properties directly.
func (Interval) Generate(rand *rand.Rand, size int) reflect.Value {
	lo := rand.Intn(2*size + 1)
	hi := lo + 1 + rand.Intn(size+1)
	return reflect.ValueOf(Interval{Lo: lo, Hi: hi})
}

// IntervalLattice implements tdk.Lattice[Interval]. Meet is always
// representable: the intersection of two intervals is itself an
// interval (or empty, in which case Meet reports disjoint). Join is
// only representable when the two intervals overlap or touch; two
// intervals separated by a gap have a union that isn't a single
// interval, so Join reports not-tight exactly as it would for
// genuinely disjoint atoms in a coarser lattice.
type IntervalLattice struct{}

func (IntervalLattice) Compare(x, y Interval) int {
	switch {
	case x.Lo != y.Lo:
		return cmpInt(x.Lo, y.Lo)
	default:
		return cmpInt(x.Hi, y.Hi)
	}
}

func (IntervalLattice) Hash(iv Interval) uint64 {
	return uint64(iv.Lo)*1099511628211 ^ uint64(iv.Hi)
}

func (IntervalLattice) Equal(x, y Interval) bool { return x == y }

func (IntervalLattice) SubsetEq(x, y Interval) bool {
	return x.Lo >= y.Lo && x.Hi <= y.Hi
}

func (IntervalLattice) Meet(x, y Interval, tight bool) (Interval, bool) {
	lo, hi := max(x.Lo, y.Lo), min(x.Hi, y.Hi)
	if lo >= hi {
		return Interval{}, false
	}
	return Interval{Lo: lo, Hi: hi}, true
}

func (IntervalLattice) Join(x, y Interval, tight bool) (Interval, bool) {
	if x.Hi < y.Lo || y.Hi < x.Lo {
		return Interval{}, false
	}
	return Interval{Lo: min(x.Lo, y.Lo), Hi: max(x.Hi, y.Hi)}, true
}

func cmpInt(x, y int) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
