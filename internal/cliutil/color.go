// Package cliutil provides the colorized terminal output used by status
// and log. The teacher repo declares github.com/fatih/color,
// github.com/mattn/go-colorable, and github.com/mattn/go-isatty in its
// go.mod but never imports any of them; this package uses fatih/color for
// the colors, gates color on go-isatty's terminal check (so output piped to
// a file or another process stays plain), and exposes Out, os.Stdout wrapped
// in go-colorable. The status and log commands print with fmt to os.Stdout,
// not through Out.
package cliutil

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Out is stdout wrapped for correct ANSI rendering on every platform the
// teacher's go.mod already targets.
var Out = colorable.NewColorableStdout()

// Enabled reports whether stdout is an interactive terminal; color.NoColor
// is set from it once at package init so every Sprint-family call below
// degrades to plain text automatically when output is redirected.
var Enabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func init() {
	color.NoColor = !Enabled
}

var (
	branchActive = color.New(color.FgGreen, color.Bold)
	branchOther  = color.New(color.FgWhite)
	staged       = color.New(color.FgGreen)
	removed      = color.New(color.FgRed)
	modified     = color.New(color.FgYellow)
	untracked    = color.New(color.FgCyan)
	commitHeader = color.New(color.FgYellow, color.Bold)
	sectionTitle = color.New(color.Bold)
)

// ActiveBranch renders a branch name the way status's "* name" line does
// for the currently checked-out branch.
func ActiveBranch(name string) string { return branchActive.Sprintf("* %s", name) }

// OtherBranch renders a non-active branch name in status's branch list.
func OtherBranch(name string) string { return branchOther.Sprintf("  %s", name) }

// Staged renders one line of status's "Staged Files" block.
func Staged(name string) string { return staged.Sprint(name) }

// Removed renders one line of status's "Removed Files" block.
func Removed(name string) string { return removed.Sprint(name) }

// Modified renders one line of status's "Modifications Not Staged" block.
func Modified(name string) string { return modified.Sprint(name) }

// Untracked renders one line of status's "Untracked Files" block.
func Untracked(name string) string { return untracked.Sprint(name) }

// CommitHeader renders log's "commit <digest>" line.
func CommitHeader(digest string) string { return commitHeader.Sprintf("commit %s", digest) }

// Section renders one of status's "=== Title ===" headers.
func Section(title string) string { return sectionTitle.Sprintf("=== %s ===", title) }
