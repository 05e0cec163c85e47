package cmd

import (
	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand("branch <name>", "Create a new branch pointing at HEAD", 1, func(s *vcs.Session, args []string) error {
		return s.Branch(args[0])
	}))

	rootCmd.AddCommand(NewRepoCommand("rm-branch <name>", "Delete a branch", 1, func(s *vcs.Session, args []string) error {
		return s.RmBranch(args[0])
	}))
}
