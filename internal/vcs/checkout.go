package vcs

import (
	"github.com/localvcs/snap/internal/vcserr"
	"github.com/localvcs/snap/internal/worktree"
)

// CheckoutFile implements spec.md §4.F's "checkout -- name".
func (s *Session) CheckoutFile(name string) error {
	head, err := s.headCommit()
	if err != nil {
		return err
	}
	return worktree.RestoreFile(s.Root, s.Store, head.Tracked, name)
}

// CheckoutCommitFile implements spec.md §4.F's "checkout id -- name".
func (s *Session) CheckoutCommitFile(commitID, name string) error {
	full, err := s.Store.ResolveCommitPrefix(commitID)
	if err != nil {
		return err
	}
	if full == "" {
		return vcserr.User("No commit with that id exists.")
	}
	c, err := s.Store.GetCommit(full)
	if err != nil {
		return err
	}
	return worktree.RestoreFile(s.Root, s.Store, c.Tracked, name)
}

// CheckoutBranch implements spec.md §4.F's "checkout branch": switch-to-
// branch.
func (s *Session) CheckoutBranch(name string) error {
	target, ok := s.Record.Refs.Branches[name]
	if !ok {
		return vcserr.User("No such branch exists.")
	}
	if name == s.Record.Refs.ActiveBranch {
		return vcserr.User("No need to checkout the current branch.")
	}

	head, err := s.headCommit()
	if err != nil {
		return err
	}
	targetCommit, err := s.Store.GetCommit(target)
	if err != nil {
		return err
	}

	if err := worktree.Switch(s.Root, s.Store, head.Tracked, targetCommit.Tracked); err != nil {
		return err
	}

	s.Record.Index.Clear()
	s.Record.Refs.ActiveBranch = name
	s.Record.Refs.Head = target
	return nil
}

// Branch implements spec.md §4.D's branch(name): create a new branch
// pointing at HEAD without moving the active branch or touching the
// working tree.
func (s *Session) Branch(name string) error {
	if _, exists := s.Record.Refs.Branches[name]; exists {
		return vcserr.User("A branch with that name already exists.")
	}
	s.Record.Refs.Branches[name] = s.head()
	return nil
}

// RmBranch implements spec.md §4.D's rm-branch(name).
func (s *Session) RmBranch(name string) error {
	if _, exists := s.Record.Refs.Branches[name]; !exists {
		return vcserr.User("A branch with that name does not exist.")
	}
	if name == s.Record.Refs.ActiveBranch {
		return vcserr.User("Cannot remove the current branch.")
	}
	delete(s.Record.Refs.Branches, name)
	return nil
}

// Reset implements spec.md §4.F's reset(commitId): reconcile the working
// tree against commitId, then move HEAD and the active branch to it.
func (s *Session) Reset(commitID string) error {
	full, err := s.Store.ResolveCommitPrefix(commitID)
	if err != nil {
		return err
	}
	if full == "" {
		return vcserr.User("No commit with that id exists.")
	}

	head, err := s.headCommit()
	if err != nil {
		return err
	}
	target, err := s.Store.GetCommit(full)
	if err != nil {
		return err
	}

	if err := worktree.Switch(s.Root, s.Store, head.Tracked, target.Tracked); err != nil {
		return err
	}

	s.Record.Index.Clear()
	s.Record.Refs.Head = full
	s.Record.Refs.Branches[s.Record.Refs.ActiveBranch] = full
	return nil
}
