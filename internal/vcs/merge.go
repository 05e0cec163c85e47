package vcs

import (
	"fmt"

	"github.com/localvcs/snap/internal/graph"
	"github.com/localvcs/snap/internal/merge"
	"github.com/localvcs/snap/internal/objects"
	"github.com/localvcs/snap/internal/vcserr"
	"github.com/localvcs/snap/internal/worktree"
)

// Merge implements spec.md §4.G's merge(otherBranch) end to end: preflight,
// split-point classification (ancestor/fast-forward short-circuits), the
// three-way file table, and the post-merge auto-commit.
func (s *Session) Merge(otherBranch string) error {
	if err := worktree.HazardCheck(s.Root, s.Store); err != nil {
		return err
	}
	if err := merge.RequireCleanIndex(s.Record.Index.IsEmpty()); err != nil {
		return err
	}
	otherTip, exists := s.Record.Refs.Branches[otherBranch]
	if !exists {
		return vcserr.User("A branch with that name does not exist.")
	}
	if err := merge.RequireNotSelfMerge(s.Record.Refs.ActiveBranch, otherBranch); err != nil {
		return err
	}

	head := s.head()
	lookup := s.summaryLookup()
	split, split2 := graph.FindSplitPoints(head, otherTip, lookup)
	hasSplit2 := split2 != ""

	if split == otherTip || (hasSplit2 && split2 == otherTip) {
		return vcserr.User("Given branch is an ancestor of the current branch.")
	}

	headCommit, err := s.headCommit()
	if err != nil {
		return err
	}
	otherCommit, err := s.Store.GetCommit(otherTip)
	if err != nil {
		return err
	}
	if split == head || (hasSplit2 && split2 == head) {
		if err := worktree.Switch(s.Root, s.Store, headCommit.Tracked, otherCommit.Tracked); err != nil {
			return err
		}
		s.Record.Index.Clear()
		s.Record.Refs.Branches[s.Record.Refs.ActiveBranch] = otherTip
		s.Record.Refs.Head = otherTip
		return vcserr.User("Current branch fast-forwarded.")
	}

	splitTracked, err := s.trackedAt(split)
	if err != nil {
		return err
	}
	split2Tracked := map[string]string{}
	if hasSplit2 {
		split2Tracked, err = s.trackedAt(split2)
		if err != nil {
			return err
		}
	}

	outcomes := merge.Plan(headCommit.Tracked, otherCommit.Tracked, splitTracked, split2Tracked, hasSplit2)
	result, err := merge.Apply(s.Root, s.Store, headCommit.Tracked, otherCommit.Tracked, outcomes)
	if err != nil {
		return err
	}

	c := objects.Commit{
		Parent1:   head,
		Parent2:   otherTip,
		Timestamp: objects.Now(),
		Message:   fmt.Sprintf("Merged %s into %s.", otherBranch, s.Record.Refs.ActiveBranch),
		Tracked:   result.Tracked,
	}
	digest, err := s.Store.PutCommit(c)
	if err != nil {
		return err
	}
	s.advance(digest, c)

	if result.HasConflicts {
		return vcserr.User("Encountered a merge conflict.")
	}
	return nil
}

// trackedAt returns the tracking map of the commit at digest, or an empty
// map when digest is "" (spec.md §4.E: no split point means every file is
// treated as new on both sides).
func (s *Session) trackedAt(digest string) (map[string]string, error) {
	if digest == "" {
		return map[string]string{}, nil
	}
	c, err := s.Store.GetCommit(digest)
	if err != nil {
		return nil, err
	}
	return c.Tracked, nil
}
