// Package nearest ranks stations by proximity to a position.
//
// Find is a direct one-to-many scan: it never builds a graph, because only
// the single hop origin → candidate is considered. Candidates are the
// available stations whose name contains the filter (case-insensitive),
// scored by planar distance plus a per-level penalty and sorted stably, so
// equal scores keep snapshot order.
package nearest

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/floorpath/core"
)

// OriginID is the ID given to positions built with Origin. Node sources
// should not hand it out to real stations.
const OriginID core.NodeID = 0

// Match is a ranked candidate.
type Match struct {
	Node  core.Node
	Score float64
}

// String implements fmt.Stringer.
func (m Match) String() string {
	return fmt.Sprintf("%s at %.2f", m.Node, m.Score)
}

// Result holds the ranked matches of a query.
//
// Ranked lists at most TopK matches, best first. Candidates counts every
// station that passed the filters, before truncation.
type Result struct {
	Ranked     []Match
	Candidates int
}

// Best returns the best match. ok is false when nothing matched.
func (r Result) Best() (m Match, ok bool) {
	if len(r.Ranked) == 0 {
		return Match{}, false
	}

	return r.Ranked[0], true
}

// Nodes returns the ranked stations without scores.
func (r Result) Nodes() []core.Node {
	out := make([]core.Node, 0, len(r.Ranked))
	for _, m := range r.Ranked {
		out = append(out, m.Node)
	}

	return out
}

// Origin returns a position-only node to rank from.
func Origin(level int, x, y float64) core.Node {
	return core.Node{ID: OriginID, Name: "Current Position", Level: level, X: x, Y: y}
}

// Find ranks the stations of nodes that match name as seen from origin.
//
// Candidate set:
//   - Name contains name, case-insensitively; an empty name matches all.
//   - Not occupied.
//   - Carries every tag given with WithTag.
//
// The result is empty (Best reports false) when no station qualifies; that
// is a normal outcome, not an error.
//
// Complexity: O(n log n) for n stations.
func Find(nodes []core.Node, name string, origin core.Node, opts ...Option) Result {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	score := cfg.scorer()
	needle := strings.ToLower(name)

	ranked := make([]Match, 0, len(nodes))
	for _, n := range nodes {
		if !cfg.matches(n, needle) {
			continue
		}
		ranked = append(ranked, Match{Node: n.Clone(), Score: score(origin, n)})
	}

	slices.SortStableFunc(ranked, func(a, b Match) int {
		switch {
		case a.Score < b.Score:
			return -1
		case a.Score > b.Score:
			return 1
		default:
			return 0
		}
	})

	res := Result{Candidates: len(ranked)}
	if len(ranked) > cfg.TopK {
		ranked = ranked[:cfg.TopK]
	}
	res.Ranked = ranked

	return res
}

// matches applies the candidate filters to n. needle is already lower-cased.
func (o Options) matches(n core.Node, needle string) bool {
	if n.Occupied {
		return false
	}
	if !strings.Contains(strings.ToLower(n.Name), needle) {
		return false
	}
	for _, tag := range o.Tags {
		if !n.HasTag(tag) {
			return false
		}
	}

	return true
}
