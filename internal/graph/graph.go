// Package graph implements spec.md §4.E: the commit DAG traversals used by
// log (first-parent walk), push/fetch (first-parent copy and ancestry
// check), and merge (split-point / lowest-common-ancestor search).
//
// Grounded in the teacher's findMergeBase
// (_examples/NahomAnteneh-vec/internal/merge/merge.go and
// internal/merge/history.go), which walks parent1 chains and intersects
// them; generalized here to also cover the "octopus" second-parent pass
// spec.md §4.E/§4.G describes and documents as a heuristic rather than a
// true multi-ancestor LCA (SPEC_FULL.md §5.1).
package graph

// Lookup resolves a commit digest to its parent digests ("" if absent).
// Callers supply this instead of a whole Commit store so the algorithms
// below only depend on the shape of the graph, not on the object codec.
type Lookup func(digest string) (parent1, parent2 string, ok bool)

// FirstParentWalk follows parent1 from start until a commit with no
// parent1 is reached, returning every digest visited in order (start
// first). Used by log (spec.md §4.I). Guards against malformed cycles with
// a seen-set, per spec.md §4.E.
func FirstParentWalk(start string, lookup Lookup) []string {
	var chain []string
	seen := map[string]bool{}
	cur := start
	for cur != "" && !seen[cur] {
		p1, _, ok := lookup(cur)
		if !ok {
			break
		}
		chain = append(chain, cur)
		seen[cur] = true
		cur = p1
	}
	return chain
}

// ReachableViaParent1 returns the set of digests reachable from start by
// repeatedly following parent1, including start itself.
func ReachableViaParent1(start string, lookup Lookup) map[string]bool {
	return reachable(start, lookup, false)
}

// ReachableViaParent2 returns the set of digests reachable from start by
// repeatedly following parent2 (the "other side" of each merge on the
// path), including start itself. Used only by the octopus split-point pass
// (spec.md §4.E/§4.G).
func ReachableViaParent2(start string, lookup Lookup) map[string]bool {
	return reachable(start, lookup, true)
}

func reachable(start string, lookup Lookup, viaParent2 bool) map[string]bool {
	seen := map[string]bool{}
	cur := start
	for cur != "" && !seen[cur] {
		seen[cur] = true
		p1, p2, ok := lookup(cur)
		if !ok {
			break
		}
		if viaParent2 {
			cur = p2
		} else {
			cur = p1
		}
	}
	return seen
}

// SplitPoint returns the first digest along B's parent1 chain that is also
// in the reachable set R (computed by the caller from A), or "" if none is
// found (spec.md §4.E step 1-2). R is consulted, not recomputed, so the
// same R can be reused across the primary and secondary (octopus) passes.
func SplitPoint(reachableFromA map[string]bool, otherTip string, lookup Lookup) string {
	seen := map[string]bool{}
	cur := otherTip
	for cur != "" && !seen[cur] {
		if reachableFromA[cur] {
			return cur
		}
		seen[cur] = true
		p1, _, ok := lookup(cur)
		if !ok {
			break
		}
		cur = p1
	}
	return ""
}

// FindSplitPoints computes spec.md §4.E/§4.G's primary split-point S between
// head and other, and — iff head has a second parent — the secondary
// (octopus) split-point S2 using head's parent2 ancestry instead of its
// parent1 ancestry. S2 is "" when head has no second parent.
func FindSplitPoints(head, other string, lookup Lookup) (s, s2 string) {
	r1 := ReachableViaParent1(head, lookup)
	s = SplitPoint(r1, other, lookup)

	_, headParent2, ok := lookup(head)
	if !ok || headParent2 == "" {
		return s, ""
	}
	r2 := ReachableViaParent2(head, lookup)
	s2 = SplitPoint(r2, other, lookup)
	return s, s2
}
