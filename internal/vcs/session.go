// Package vcs implements spec.md §4.H: the command layer that orchestrates
// the object store, index, refs, commit graph, working-tree reconciler,
// and merge engine into the user-visible operations init, add, commit, rm,
// log, global-log, find, status, the checkout variants, branch, rm-branch,
// reset, merge, add-remote, rm-remote, push, fetch, and pull.
//
// Grounded in the teacher's per-command functions spread across cmd/*.go
// (_examples/NahomAnteneh-vec/cmd/), but collected into one package so the
// cmd/ CLI layer stays a thin cobra wrapper, matching spec.md §5's
// scheduling model: a command loads the control record, mutates an
// in-memory Session, and saves it back as its last step.
package vcs

import (
	"github.com/localvcs/snap/internal/control"
	"github.com/localvcs/snap/internal/objects"
	"github.com/localvcs/snap/internal/vcserr"
)

// Session is one command invocation's working copy of a repository: the
// object store (immutable, content-addressed) plus the mutable control
// record loaded at the start and written back by Save.
type Session struct {
	Root   string
	Store  objects.Store
	Record control.Record
}

// Open loads the repository rooted at root. A missing repository directory
// is the one case every command besides Init must reject identically
// (spec.md §6: "Not in an initialized Gitlet directory.").
func Open(root string) (*Session, error) {
	store := objects.Store{Root: root}
	if !store.Exists() {
		return nil, vcserr.User("Not in an initialized Gitlet directory.")
	}
	rec, err := control.Load(root)
	if err != nil {
		return nil, err
	}
	return &Session{Root: root, Store: store, Record: rec}, nil
}

// Save persists the session's control record, the final step of every
// command (spec.md §5).
func (s *Session) Save() error {
	return control.Save(s.Root, s.Record)
}

// head returns the digest HEAD currently points at.
func (s *Session) head() string { return s.Record.Refs.Head }

// headCommit loads the full Commit object HEAD points at.
func (s *Session) headCommit() (objects.Commit, error) {
	return s.Store.GetCommit(s.head())
}

// Init creates a brand-new repository at root: the object store
// directories, the initial commit, and a control record with a single
// "master" branch pointing at it (spec.md §4.D).
func Init(root string) error {
	store := objects.Store{Root: root}
	if store.Exists() {
		return vcserr.User("A Gitlet version-control system already exists in the current directory.")
	}
	if err := store.Init(); err != nil {
		return err
	}

	initial := objects.NewInitialCommit()
	digest, err := store.PutCommit(initial)
	if err != nil {
		return err
	}

	rec := control.New()
	rec.Refs.Branches["master"] = digest
	rec.Refs.ActiveBranch = "master"
	rec.Refs.Head = digest
	rec.Summaries[digest] = objects.Summary{Timestamp: initial.Timestamp, Message: initial.Message}

	return control.Save(root, rec)
}
