package vcs

import (
	"github.com/localvcs/snap/internal/remote"
	"github.com/localvcs/snap/internal/vcserr"
)

// AddRemote implements spec.md §4.H's add-remote(name, path).
func (s *Session) AddRemote(name, path string) error {
	if _, exists := s.Record.Refs.Remotes[name]; exists {
		return vcserr.User("A remote with that name already exists.")
	}
	s.Record.Refs.Remotes[name] = remote.Normalize(path)
	return nil
}

// RmRemote implements spec.md §4.H's rm-remote(name).
func (s *Session) RmRemote(name string) error {
	if _, exists := s.Record.Refs.Remotes[name]; !exists {
		return vcserr.User("A remote with that name does not exist.")
	}
	delete(s.Record.Refs.Remotes, name)
	return nil
}

func (s *Session) remotePath(name string) (string, error) {
	path, exists := s.Record.Refs.Remotes[name]
	if !exists {
		return "", vcserr.User("A remote with that name does not exist.")
	}
	return path, nil
}

// Push implements spec.md §4.H's push(remoteName, branch).
func (s *Session) Push(remoteName, branch string) error {
	path, err := s.remotePath(remoteName)
	if err != nil {
		return err
	}
	return remote.Push(s.Root, s.Store, s.Record, path, branch)
}

// Fetch implements spec.md §4.H's fetch(remoteName, branch).
func (s *Session) Fetch(remoteName, branch string) error {
	path, err := s.remotePath(remoteName)
	if err != nil {
		return err
	}
	return remote.Fetch(s.Root, s.Store, &s.Record, remoteName, path, branch)
}

// Pull implements spec.md §4.H's pull(remoteName, branch): fetch, then
// merge the fetched tracking branch into the active branch.
func (s *Session) Pull(remoteName, branch string) error {
	path, err := s.remotePath(remoteName)
	if err != nil {
		return err
	}
	return remote.Pull(s.Root, s.Store, &s.Record, remoteName, path, branch, s.Merge)
}
