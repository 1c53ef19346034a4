package tdk

import "github.com/frenetic-lang/tdk/intern"

// nodeStore is the node store of §4.2: a specialization of intern.Interner
// to node[V,L,R], adding the two reduction-preserving smart constructors.
type nodeStore[V, L, R any] struct {
	in *intern.Interner[node[V, L, R]]
}

func newNodeStore[V, L, R any](vars Variable[V], lat Lattice[L], sr Semiring[R]) *nodeStore[V, L, R] {
	return &nodeStore[V, L, R]{
		in: intern.New[node[V, L, R]](nodeHasher[V, L, R]{vars: vars, lat: lat, sr: sr}),
	}
}

// mkLeaf interns a constant node and returns its id.
func (s *nodeStore[V, L, R]) mkLeaf(r R) NodeID {
	return NodeID(s.in.Get(node[V, L, R]{kind: leafKind, r: r}))
}

// mkBranch applies the reduction rule (t == f returns t unchanged)
// before interning, guaranteeing the store never contains a redundant
// branch.
func (s *nodeStore[V, L, R]) mkBranch(v V, l L, t, f NodeID) NodeID {
	if t == f {
		return t
	}
	return NodeID(s.in.Get(node[V, L, R]{kind: branchKind, v: v, l: l, t: t, f: f}))
}

func (s *nodeStore[V, L, R]) get(id NodeID) (node[V, L, R], error) {
	return s.in.Unget(int64(id))
}

func (s *nodeStore[V, L, R]) clear() {
	s.in.Clear()
}
