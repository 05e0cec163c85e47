package vcs

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/localvcs/snap/internal/cliutil"
	"github.com/localvcs/snap/internal/fsutil"
	"github.com/localvcs/snap/internal/graph"
	"github.com/localvcs/snap/internal/objects"
	"github.com/localvcs/snap/internal/vcserr"
	"github.com/localvcs/snap/internal/worktree"
)

func (s *Session) summaryLookup() graph.Lookup {
	return func(digest string) (string, string, bool) {
		sum, ok := s.Record.Summaries[digest]
		return sum.Parent1, sum.Parent2, ok
	}
}

func formatCommitBlock(digest string, sum objects.Summary) string {
	var b strings.Builder
	b.WriteString("===\n")
	b.WriteString(cliutil.CommitHeader(digest))
	b.WriteString("\n")
	if sum.Parent2 != "" {
		fmt.Fprintf(&b, "Merge: %s %s\n", shortDigest(sum.Parent1), shortDigest(sum.Parent2))
	}
	fmt.Fprintf(&b, "Date: %s\n", sum.Timestamp.String())
	b.WriteString(sum.Message)
	b.WriteString("\n\n")
	return b.String()
}

func shortDigest(d string) string {
	if len(d) < 7 {
		return d
	}
	return d[:7]
}

// Log implements spec.md §4.I's log: a first-parent walk from HEAD.
func (s *Session) Log() string {
	chain := graph.FirstParentWalk(s.head(), s.summaryLookup())
	var b strings.Builder
	for _, digest := range chain {
		b.WriteString(formatCommitBlock(digest, s.Record.Summaries[digest]))
	}
	return b.String()
}

// byTimestampDesc sorts commit digests by timestamp descending, digest as
// tiebreaker, giving find and global-log a fixed order instead of the
// teacher's order-of-directory-listing behavior.
func (s *Session) byTimestampDesc(digests []string) {
	sort.Slice(digests, func(i, j int) bool {
		si, sj := s.Record.Summaries[digests[i]], s.Record.Summaries[digests[j]]
		if si.Timestamp.Unix != sj.Timestamp.Unix {
			return si.Timestamp.Unix > sj.Timestamp.Unix
		}
		return digests[i] < digests[j]
	})
}

// GlobalLog implements spec.md §4.I's global-log: every commit, sorted by
// timestamp descending (spec.md §9.4).
func (s *Session) GlobalLog() string {
	digests := make([]string, 0, len(s.Record.Summaries))
	for d := range s.Record.Summaries {
		digests = append(digests, d)
	}
	s.byTimestampDesc(digests)
	var b strings.Builder
	for _, digest := range digests {
		b.WriteString(formatCommitBlock(digest, s.Record.Summaries[digest]))
	}
	return b.String()
}

// Find implements spec.md §4.I's find(msg), sorted by timestamp descending
// (spec.md §9.4).
func (s *Session) Find(msg string) (string, error) {
	var matches []string
	for digest, sum := range s.Record.Summaries {
		if strings.Contains(sum.Message, msg) {
			matches = append(matches, digest)
		}
	}
	if len(matches) == 0 {
		return "", vcserr.User("Found no commit with that message.")
	}
	s.byTimestampDesc(matches)
	return strings.Join(matches, "\n") + "\n", nil
}

// Status implements spec.md §4.I's status: five blank-line-terminated
// blocks.
func (s *Session) Status() (string, error) {
	var b strings.Builder

	b.WriteString(cliutil.Section("Branches"))
	b.WriteString("\n")
	branches := make([]string, 0, len(s.Record.Refs.Branches))
	for name := range s.Record.Refs.Branches {
		branches = append(branches, name)
	}
	sort.Strings(branches)
	for _, name := range branches {
		if name == s.Record.Refs.ActiveBranch {
			b.WriteString(cliutil.ActiveBranch(name))
		} else {
			b.WriteString(cliutil.OtherBranch(name))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(cliutil.Section("Staged Files"))
	b.WriteString("\n")
	staged := sortedKeys(s.Record.Index.StagedAdd)
	for _, name := range staged {
		b.WriteString(cliutil.Staged(name))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(cliutil.Section("Removed Files"))
	b.WriteString("\n")
	removed := sortedSet(s.Record.Index.StagedRemove)
	for _, name := range removed {
		b.WriteString(cliutil.Removed(name))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	modifications, err := s.modificationsNotStaged()
	if err != nil {
		return "", err
	}
	b.WriteString(cliutil.Section("Modifications Not Staged For Commit"))
	b.WriteString("\n")
	for _, line := range modifications {
		b.WriteString(cliutil.Modified(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	untracked, err := s.untrackedFiles()
	if err != nil {
		return "", err
	}
	b.WriteString(cliutil.Section("Untracked Files"))
	b.WriteString("\n")
	for _, name := range untracked {
		b.WriteString(cliutil.Untracked(name))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String(), nil
}

func (s *Session) modificationsNotStaged() ([]string, error) {
	head, err := s.headCommit()
	if err != nil {
		return nil, err
	}

	candidates := map[string]bool{}
	for name := range head.Tracked {
		candidates[name] = true
	}
	for name := range s.Record.Index.StagedAdd {
		candidates[name] = true
	}
	for name := range s.Record.Index.StagedRemove {
		delete(candidates, name)
	}

	var lines []string
	for name := range candidates {
		effective := head.Tracked[name]
		if d, staged := s.Record.Index.StagedAdd[name]; staged {
			effective = d
		}
		path := filepath.Join(s.Root, name)
		if !fsutil.FileExists(path) {
			lines = append(lines, name+" (deleted)")
			continue
		}
		content, err := fsutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		digest := objects.Blob{Name: name, Bytes: content}.Digest()
		if digest != effective {
			lines = append(lines, name+" (modified)")
		}
	}
	sort.Slice(lines, func(i, j int) bool {
		return strings.ToLower(lines[i]) < strings.ToLower(lines[j])
	})
	return lines, nil
}

func (s *Session) untrackedFiles() ([]string, error) {
	files, err := worktree.WalkWorkingFiles(s.Root)
	if err != nil {
		return nil, err
	}
	var untracked []string
	for _, name := range files {
		content, err := fsutil.ReadFile(filepath.Join(s.Root, name))
		if err != nil {
			return nil, err
		}
		digest := objects.Blob{Name: name, Bytes: content}.Digest()
		if !s.Store.HasBlob(digest) {
			untracked = append(untracked, name)
		}
	}
	sort.Strings(untracked)
	return untracked, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSet(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
