// Package merge implements spec.md §4.G: the three-way merge of one branch
// into another, driven by the split-point(s) internal/graph finds and
// materialized into the working tree by internal/worktree.
//
// Grounded in the teacher's performMerge/resolveConflict/writeConflictFile
// (_examples/NahomAnteneh-vec/internal/merge/merge.go), generalized from
// the teacher's recursive tree-entry walk to spec.md's flat file-name
// table, and from the teacher's three-section "<<<<<<< ours / ||||||| base
// / ======= / >>>>>>> theirs" marker format to the two-section
// "<<<<<<< HEAD / ======= / >>>>>>>" format spec.md §4.G specifies.
package merge

import (
	"bytes"
	"path/filepath"
	"sort"

	"github.com/localvcs/snap/internal/fsutil"
	"github.com/localvcs/snap/internal/objects"
	"github.com/localvcs/snap/internal/vcserr"
)

// Action is the outcome of classifying one candidate file name against the
// split point(s), the active branch's tip, and the other branch's tip.
type Action int

const (
	Keep Action = iota
	TakeOther
	Remove
	Conflict
)

// FileOutcome names one file and the action the three-way table assigned it.
type FileOutcome struct {
	Name   string
	Action Action
}

// decide implements spec.md §4.G's classification table for a single file,
// given its blob digest at the split point (s), on the active branch (a),
// and on the other branch (o); an empty string means the file is absent
// there. The absent-side rows are checked first since they refine what the
// equality-based rows would otherwise call "take other" into "remove", and
// what they'd call "keep" in a case where the file never existed on the
// active side.
func decide(s, a, o string) Action {
	sPresent := s != ""
	aPresent := a != ""
	oPresent := o != ""

	if !sPresent {
		if !aPresent && oPresent {
			return TakeOther
		}
		if aPresent && !oPresent {
			return Keep
		}
	}
	if sPresent {
		if aPresent && a == s && !oPresent {
			return Remove
		}
		if aPresent && a != s && !oPresent {
			return Conflict
		}
		if !aPresent && oPresent && o != s {
			return Conflict
		}
	}

	switch {
	case a == s && o != s:
		return TakeOther
	case a != s && o == s:
		return Keep
	case a != s && o != s:
		if a == o {
			return Keep
		}
		return Conflict
	default: // a == s && o == s
		return Keep
	}
}

// combine folds the secondary ("octopus") split-point pass into the
// primary one: spec.md §4.G/§9.1 documents this as escalate-only — the
// second pass can turn a Keep/Remove into TakeOther or Conflict, but never
// the reverse. This is a heuristic, not a true multi-ancestor merge base.
func combine(primary, secondary Action) Action {
	if secondary == Conflict {
		return Conflict
	}
	if secondary == TakeOther && primary != Conflict {
		return TakeOther
	}
	return primary
}

// Plan classifies every candidate file name into a FileOutcome. split2 and
// hasSplit2 carry the octopus second split-point; pass hasSplit2 = false
// (split2 ignored) for an ordinary two-parent split point.
func Plan(head, other, split, split2 map[string]string, hasSplit2 bool) []FileOutcome {
	names := map[string]bool{}
	for n := range head {
		names[n] = true
	}
	for n := range other {
		names[n] = true
	}
	for n := range split {
		names[n] = true
	}
	if hasSplit2 {
		for n := range split2 {
			names[n] = true
		}
	}

	outcomes := make([]FileOutcome, 0, len(names))
	for n := range names {
		a := decide(split[n], head[n], other[n])
		if hasSplit2 {
			a = combine(a, decide(split2[n], head[n], other[n]))
		}
		outcomes = append(outcomes, FileOutcome{Name: n, Action: a})
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].Name < outcomes[j].Name })
	return outcomes
}

// Result is what Apply reports back to the caller, which records Tracked in
// the merge commit it always creates and uses HasConflicts to decide whether
// to report a merge conflict (spec.md §4.G step 5).
type Result struct {
	Tracked      map[string]string // the merge's resulting file -> blob-digest map
	HasConflicts bool
}

const (
	conflictOpen  = "<<<<<<< HEAD\n"
	conflictMid   = "=======\n"
	conflictClose = ">>>>>>>\n"
)

// Apply materializes a Plan into the working directory at root: TakeOther
// writes the other branch's blob, Remove deletes the file, Conflict writes
// a two-section marker file built from the active and other content (the
// base version isn't shown, matching spec.md §4.G's marker format), and
// both TakeOther's and Conflict's resulting content are staged as the new
// tracked blob so the eventual merge commit records exactly what's on disk.
func Apply(root string, store objects.Store, head, other map[string]string, outcomes []FileOutcome) (Result, error) {
	tracked := make(map[string]string, len(head))
	for n, d := range head {
		tracked[n] = d
	}
	result := Result{Tracked: tracked}

	for _, o := range outcomes {
		switch o.Action {
		case Keep:
			// tracked[o.Name] already holds the active branch's digest (or
			// is absent, if the file was never tracked on this side).

		case Remove:
			delete(tracked, o.Name)
			if err := fsutil.RestrictedDelete(root, filepath.Join(root, o.Name)); err != nil {
				return Result{}, err
			}

		case TakeOther:
			blob, err := store.GetBlob(other[o.Name])
			if err != nil {
				return Result{}, err
			}
			if err := fsutil.WriteFile(filepath.Join(root, o.Name), blob.Bytes); err != nil {
				return Result{}, err
			}
			tracked[o.Name] = other[o.Name]

		case Conflict:
			result.HasConflicts = true
			content, err := conflictContent(store, head[o.Name], other[o.Name])
			if err != nil {
				return Result{}, err
			}
			if err := fsutil.WriteFile(filepath.Join(root, o.Name), content); err != nil {
				return Result{}, err
			}
			blob := objects.Blob{Name: o.Name, Bytes: content}
			digest, err := store.PutBlob(blob)
			if err != nil {
				return Result{}, err
			}
			tracked[o.Name] = digest
		}
	}

	return result, nil
}

func conflictContent(store objects.Store, headDigest, otherDigest string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(conflictOpen)
	if headDigest != "" {
		blob, err := store.GetBlob(headDigest)
		if err != nil {
			return nil, err
		}
		buf.Write(blob.Bytes)
	}
	buf.WriteString(conflictMid)
	if otherDigest != "" {
		blob, err := store.GetBlob(otherDigest)
		if err != nil {
			return nil, err
		}
		buf.Write(blob.Bytes)
	}
	buf.WriteString(conflictClose)
	return buf.Bytes(), nil
}

// RequireCleanIndex reports spec.md §4.G's pre-merge refusal when the index
// still has something staged (a merge requires a clean index before it
// starts). Checked after the hazard check and before branch-existence, per
// spec.md's ordering.
func RequireCleanIndex(indexEmpty bool) error {
	if !indexEmpty {
		return vcserr.User("You have uncommitted changes.")
	}
	return nil
}

// RequireNotSelfMerge reports spec.md §4.G's refusal to merge a branch with
// itself. Checked last, after branch existence, since the caller needs the
// branch lookup's result regardless.
func RequireNotSelfMerge(activeBranch, otherBranch string) error {
	if activeBranch == otherBranch {
		return vcserr.User("Cannot merge a branch with itself.")
	}
	return nil
}
