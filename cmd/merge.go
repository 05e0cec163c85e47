package cmd

import (
	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand("merge <branch>", "Merge a branch into the active branch", 1, func(s *vcs.Session, args []string) error {
		return s.Merge(args[0])
	}))
}
