package gen

import (
	"fmt"

	"github.com/syssam/aggregen/querylanguage"
)

// SearchPredicate returns the predicate selecting entries of the view's
// entry aggregate whose related aggregate, reached along the view's path,
// matches filter on member m. The predicate on m is wrapped in one has_edge
// call per traversed relation, so the same member reached along different
// routes yields different predicates. A nil predicate means the filter
// imposes no condition.
func SearchPredicate(v Node, m *Member, filter any) (querylanguage.P, error) {
	if m.Owner != v.Value() {
		return nil, fmt.Errorf("gen: member %q is not declared by %q", m.Path(), v.Value().Path())
	}
	p, err := m.Search(filter)
	if err != nil || p == nil {
		return nil, err
	}
	steps := v.PathFromEntry().Edges()
	for i := len(steps) - 1; i >= 0; i-- {
		e := steps[i]
		rel := e.Relation()
		if e.IsReverse() {
			if !IsOwnership(e) {
				return nil, fmt.Errorf("gen: cannot search across %s backwards", e)
			}
			rel = e.Origin().Value().ParentMember().Name
		}
		p = querylanguage.HasEdgeWith(rel, p)
	}
	return p, nil
}
