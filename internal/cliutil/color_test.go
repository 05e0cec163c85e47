package cliutil

import (
	"strings"
	"testing"
)

// go test's output is not a terminal, so color.NoColor is true here and every
// Sprint call below degrades to plain text; these checks hold either way
// since they only look for the underlying text, not for ANSI escapes.

func TestActiveBranchContainsName(t *testing.T) {
	if got := ActiveBranch("master"); !strings.Contains(got, "* master") {
		t.Fatalf("ActiveBranch(master) = %q, want it to contain %q", got, "* master")
	}
}

func TestOtherBranchContainsName(t *testing.T) {
	if got := OtherBranch("feature"); !strings.Contains(got, "feature") {
		t.Fatalf("OtherBranch(feature) = %q, want it to contain %q", got, "feature")
	}
}

func TestStagedRemovedModifiedUntracked(t *testing.T) {
	cases := []struct {
		fn   func(string) string
		name string
	}{
		{Staged, "a.txt"},
		{Removed, "b.txt"},
		{Modified, "c.txt"},
		{Untracked, "d.txt"},
	}
	for _, c := range cases {
		if got := c.fn(c.name); !strings.Contains(got, c.name) {
			t.Fatalf("render(%q) = %q, want it to contain the file name", c.name, got)
		}
	}
}

func TestCommitHeaderContainsDigest(t *testing.T) {
	got := CommitHeader("abc123")
	if !strings.Contains(got, "commit") || !strings.Contains(got, "abc123") {
		t.Fatalf("CommitHeader(abc123) = %q, want it to contain %q and %q", got, "commit", "abc123")
	}
}

func TestSectionContainsTitle(t *testing.T) {
	got := Section("Staged Files")
	if !strings.Contains(got, "Staged Files") {
		t.Fatalf("Section(Staged Files) = %q, want it to contain the title", got)
	}
}
