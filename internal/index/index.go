// Package index implements spec.md §3/§4.C: the staging area tracking
// pending additions (name -> blob digest) and pending removals (a name
// set). Modeled on the teacher's internal/staging.Index
// (_examples/NahomAnteneh-vec/internal/staging/index.go), reduced to the
// two flat maps spec.md actually specifies — no conflict stages, no mode
// bits, no mtime cache, since this system has no tree objects to rebuild
// from the index.
package index

// Index is spec.md §3's Index record.
type Index struct {
	StagedAdd    map[string]string // file name -> blob digest
	StagedRemove map[string]bool   // set of file names
}

// New returns an empty Index.
func New() Index {
	return Index{
		StagedAdd:    map[string]string{},
		StagedRemove: map[string]bool{},
	}
}

// Clone returns a deep copy.
func (idx Index) Clone() Index {
	out := Index{
		StagedAdd:    make(map[string]string, len(idx.StagedAdd)),
		StagedRemove: make(map[string]bool, len(idx.StagedRemove)),
	}
	for k, v := range idx.StagedAdd {
		out.StagedAdd[k] = v
	}
	for k := range idx.StagedRemove {
		out.StagedRemove[k] = true
	}
	return out
}

// Clear empties both staged maps, as commit/merge/branch-switch/reset do
// (spec.md §3 Lifecycles).
func (idx *Index) Clear() {
	idx.StagedAdd = map[string]string{}
	idx.StagedRemove = map[string]bool{}
}

// IsEmpty reports whether there is nothing staged at all.
func (idx Index) IsEmpty() bool {
	return len(idx.StagedAdd) == 0 && len(idx.StagedRemove) == 0
}
