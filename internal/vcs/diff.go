package vcs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/localvcs/snap/internal/fsutil"
	"github.com/localvcs/snap/internal/vcserr"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a unified line-diff between the working-tree copy of name
// and the blob HEAD tracks for it. Supplemental, display-only command
// (SPEC_FULL.md §4.1); never consulted by the merge engine.
func (s *Session) Diff(name string) (string, error) {
	head, err := s.headCommit()
	if err != nil {
		return "", err
	}
	return s.diffAgainst(head.Tracked, name)
}

// DiffCommit renders a unified line-diff between the working-tree copy of
// name and the version commitID tracked for it.
func (s *Session) DiffCommit(commitID, name string) (string, error) {
	full, err := s.Store.ResolveCommitPrefix(commitID)
	if err != nil {
		return "", err
	}
	if full == "" {
		return "", vcserr.User("No commit with that id exists.")
	}
	c, err := s.Store.GetCommit(full)
	if err != nil {
		return "", err
	}
	return s.diffAgainst(c.Tracked, name)
}

func (s *Session) diffAgainst(tracked map[string]string, name string) (string, error) {
	var oldText string
	if digest, ok := tracked[name]; ok {
		blob, err := s.Store.GetBlob(digest)
		if err != nil {
			return "", err
		}
		oldText = string(blob.Bytes)
	}

	var newText string
	path := filepath.Join(s.Root, name)
	if fsutil.FileExists(path) {
		data, err := fsutil.ReadFile(path)
		if err != nil {
			return "", err
		}
		newText = string(data)
	}

	if oldText == newText {
		return "No changes.\n", nil
	}

	dmp := diffmatchpatch.New()
	oldChars, newChars, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(oldChars, newChars, false), lines)

	var out strings.Builder
	fmt.Fprintf(&out, "diff --snap a/%s b/%s\n", name, name)
	fmt.Fprintf(&out, "--- a/%s\n", name)
	fmt.Fprintf(&out, "+++ b/%s\n", name)
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		default:
			prefix = " "
		}
		lines := strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")
		for _, line := range lines {
			fmt.Fprintf(&out, "%s%s\n", prefix, line)
		}
	}
	return out.String(), nil
}
