package vcs

import (
	"path/filepath"

	"github.com/localvcs/snap/internal/fsutil"
	"github.com/localvcs/snap/internal/objects"
	"github.com/localvcs/snap/internal/vcserr"
)

// Add implements spec.md §4.C's add(name).
func (s *Session) Add(name string) error {
	path := filepath.Join(s.Root, name)
	if !fsutil.FileExists(path) {
		return vcserr.User("File does not exist.")
	}

	if s.Record.Index.StagedRemove[name] {
		delete(s.Record.Index.StagedRemove, name)
		return nil
	}

	content, err := fsutil.ReadFile(path)
	if err != nil {
		return err
	}
	digest := objects.Blob{Name: name, Bytes: content}.Digest()

	head, err := s.headCommit()
	if err != nil {
		return err
	}
	if head.Tracked[name] == digest {
		delete(s.Record.Index.StagedAdd, name)
		return nil
	}

	if _, err := s.Store.PutBlob(objects.Blob{Name: name, Bytes: content}); err != nil {
		return err
	}
	s.Record.Index.StagedAdd[name] = digest
	return nil
}

// Rm implements spec.md §4.C's rm(name).
func (s *Session) Rm(name string) error {
	if _, staged := s.Record.Index.StagedAdd[name]; staged {
		delete(s.Record.Index.StagedAdd, name)
		return nil
	}

	head, err := s.headCommit()
	if err != nil {
		return err
	}
	if _, tracked := head.Tracked[name]; tracked {
		s.Record.Index.StagedRemove[name] = true
		path := filepath.Join(s.Root, name)
		if fsutil.FileExists(path) {
			if err := fsutil.RestrictedDelete(s.Root, path); err != nil {
				return err
			}
		}
		return nil
	}

	return vcserr.User("No reason to remove the file.")
}

// Commit implements spec.md §3/§4.I's commit(message): fold the index into
// HEAD's tracking map, write the new commit, advance the active branch,
// and clear the index.
func (s *Session) Commit(message string) error {
	if message == "" {
		return vcserr.User("Please enter a commit message.")
	}
	if s.Record.Index.IsEmpty() {
		return vcserr.User("No changes added to the commit.")
	}

	head, err := s.headCommit()
	if err != nil {
		return err
	}

	tracked := make(map[string]string, len(head.Tracked))
	for name, digest := range head.Tracked {
		tracked[name] = digest
	}
	for name, digest := range s.Record.Index.StagedAdd {
		tracked[name] = digest
	}
	for name := range s.Record.Index.StagedRemove {
		delete(tracked, name)
	}

	c := objects.Commit{
		Parent1:   s.head(),
		Timestamp: objects.Now(),
		Message:   message,
		Tracked:   tracked,
	}
	digest, err := s.Store.PutCommit(c)
	if err != nil {
		return err
	}

	s.advance(digest, c)
	return nil
}

// advance moves the active branch tip and HEAD to digest, records its
// summary, and clears the index — the bookkeeping commit and merge share.
func (s *Session) advance(digest string, c objects.Commit) {
	s.Record.Refs.Branches[s.Record.Refs.ActiveBranch] = digest
	s.Record.Refs.Head = digest
	s.Record.Summaries[digest] = objects.Summary{
		Parent1:   c.Parent1,
		Parent2:   c.Parent2,
		Timestamp: c.Timestamp,
		Message:   c.Message,
	}
	s.Record.Index.Clear()
}
