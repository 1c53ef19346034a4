package tdktest

// IntSemiring implements tdk.Semiring[int] as ordinary integer
// arithmetic: Sum is +, Prod is *, Zero is 0, One is 1. This is the
// simplest faithful semiring instance and is enough to exercise every
// identity/absorbing-leaf shortcut in apply.go (0 absorbs Prod, 1 is
// its identity, 0 is Sum's identity).
type IntSemiring struct{}

func (IntSemiring) Compare(x, y int) int { return cmpInt(x, y) }

func (IntSemiring) Hash(r int) uint64 { return uint64(r) }

func (IntSemiring) Zero() int { return 0 }

func (IntSemiring) One() int { return 1 }

func (IntSemiring) Sum(x, y int) int { return x + y }

func (IntSemiring) Prod(x, y int) int { return x * y }

// BoolOrSemiring implements tdk.Semiring[bool] with Sum = OR,
// Prod = AND: the semiring classically paired with predicate
// diagrams, letting Sum/Prod on diagrams model "or"/"and" directly.
type BoolOrSemiring struct{}

func (BoolOrSemiring) Compare(x, y bool) int {
	switch {
	case x == y:
		return 0
	case !x:
		return -1
	default:
		return 1
	}
}

func (BoolOrSemiring) Hash(r bool) uint64 {
	if r {
		return 1
	}
	return 0
}

func (BoolOrSemiring) Zero() bool { return false }

func (BoolOrSemiring) One() bool { return true }

func (BoolOrSemiring) Sum(x, y bool) bool { return x || y }

func (BoolOrSemiring) Prod(x, y bool) bool { return x && y }
