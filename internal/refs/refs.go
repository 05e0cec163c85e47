// Package refs implements spec.md §3/§4.D: the branch-name -> commit-digest
// map, the active branch, HEAD, and the remote-name -> filesystem-path map.
// Modeled on the teacher's refs/heads, refs/remotes directory layout
// (_examples/NahomAnteneh-vec/internal/repository/repository.go), but kept
// as plain in-memory maps here because the whole control record — refs,
// index, remotes, and commit summaries — is persisted together as one file
// (spec.md §4.I), not as one file per branch.
package refs

// Refs is spec.md §3's Refs record.
type Refs struct {
	Branches     map[string]string // branch name -> commit digest
	ActiveBranch string
	Head         string            // digest of the tip of ActiveBranch
	Remotes      map[string]string // remote name -> filesystem path
}

// New returns an empty Refs value with initialized maps.
func New() Refs {
	return Refs{
		Branches: map[string]string{},
		Remotes:  map[string]string{},
	}
}

// Clone returns a deep copy, so callers can mutate a working copy and only
// commit it back to the control record on success.
func (r Refs) Clone() Refs {
	out := Refs{
		Branches:     make(map[string]string, len(r.Branches)),
		ActiveBranch: r.ActiveBranch,
		Head:         r.Head,
		Remotes:      make(map[string]string, len(r.Remotes)),
	}
	for k, v := range r.Branches {
		out.Branches[k] = v
	}
	for k, v := range r.Remotes {
		out.Remotes[k] = v
	}
	return out
}
