package cmd

import (
	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand("reset <commitId>", "Reconcile the working tree against a commit", 1, func(s *vcs.Session, args []string) error {
		return s.Reset(args[0])
	}))
}
