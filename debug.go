package tdk

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"
)

// diagramShape is an intermediate, pretty-printable representation of a
// diagram, built by folding a NodeID tree into a plain Go value tree
// with no unexported state or cycles, which sprintShape walks, handing
// only the leaf, variable, and lattice values to kr/pretty.
//
// This exists only for debugging: it is not a serialization format and
// carries no stability or round-trip contract. See SPEC_FULL.md §9 on
// the OCaml source's broken, and intentionally unported, to_string.
type diagramShape struct {
	Leaf     any
	Var      any
	Lattice  any
	True     *diagramShape
	False    *diagramShape
	IsBranch bool
}

func shapeOf[V, L, R any](e *Engine[V, L, R], u NodeID) *diagramShape {
	return Fold(e,
		func(r R) *diagramShape {
			return &diagramShape{Leaf: r}
		},
		func(v V, l L, t, f *diagramShape) *diagramShape {
			return &diagramShape{Var: v, Lattice: l, True: t, False: f, IsBranch: true}
		},
		u)
}

// Sprint returns a multi-line, human-readable dump of the diagram
// rooted at u, suitable for debugging test failures. It is backed by
// kr/pretty, the same formatter quicktest uses internally to render
// failure comments.
func Sprint[V, L, R any](e *Engine[V, L, R], u NodeID) string {
	var b strings.Builder
	sprintShape(&b, shapeOf(e, u), 0)
	return b.String()
}

func sprintShape(b *strings.Builder, s *diagramShape, depth int) {
	indent := strings.Repeat("  ", depth)
	if !s.IsBranch {
		fmt.Fprintf(b, "%sleaf %s\n", indent, pretty.Sprint(s.Leaf))
		return
	}
	fmt.Fprintf(b, "%sbranch %s satisfies %s\n", indent, pretty.Sprint(s.Var), pretty.Sprint(s.Lattice))
	fmt.Fprintf(b, "%s  true:\n", indent)
	sprintShape(b, s.True, depth+2)
	fmt.Fprintf(b, "%s  false:\n", indent)
	sprintShape(b, s.False, depth+2)
}
