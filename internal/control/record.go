// Package control implements spec.md §2/§4.I: the single mutable control
// record — refs, index, remotes, and the commit-summary cache — that every
// command loads at the start, mutates in memory, and writes back as its
// last step (spec.md §5's scheduling model). Grounded in the teacher's
// monolithic per-repository state in
// _examples/NahomAnteneh-vec/internal/repository/repository.go, but
// collapsed to the single file spec.md §6 specifies ("repository") instead
// of the teacher's directory of loose ref files.
package control

import (
	"fmt"

	"github.com/localvcs/snap/internal/fsutil"
	"github.com/localvcs/snap/internal/index"
	"github.com/localvcs/snap/internal/objects"
	"github.com/localvcs/snap/internal/refs"
)

// Record is the whole of a repository's mutable state, as spec.md §2
// describes flowing through every command.
type Record struct {
	Refs      refs.Refs
	Index     index.Index
	Summaries map[string]objects.Summary // commit digest -> reduced view
}

// New returns an empty Record.
func New() Record {
	return Record{
		Refs:      refs.New(),
		Index:     index.New(),
		Summaries: map[string]objects.Summary{},
	}
}

// Clone returns a deep copy of the record, so a command can mutate a
// working copy and only persist it on success.
func (r Record) Clone() Record {
	out := Record{
		Refs:      r.Refs.Clone(),
		Index:     r.Index.Clone(),
		Summaries: make(map[string]objects.Summary, len(r.Summaries)),
	}
	for k, v := range r.Summaries {
		out.Summaries[k] = v
	}
	return out
}

// path returns the single file a repository's control record lives in
// (spec.md §6: "repository").
func path(root string) string {
	return root + "/" + objects.DirName() + "/repository"
}

// Load reads the control record from disk. A repository that was just
// created by Init has already written an initial record, so a missing file
// here means the directory isn't an initialized repository at all.
func Load(root string) (Record, error) {
	data, err := fsutil.ReadFile(path(root))
	if err != nil {
		return Record{}, fmt.Errorf("failed to read repository control record: %w", err)
	}
	return decodeRecord(data)
}

// Save writes the control record back to disk, the final step of every
// command (spec.md §5).
func Save(root string, r Record) error {
	data := encodeRecord(r)
	if err := fsutil.WriteFile(path(root), data); err != nil {
		return fmt.Errorf("failed to write repository control record: %w", err)
	}
	return nil
}
