package cmd

import (
	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand("fetch <remoteName> <remoteBranch>", "Fetch commits from a remote branch", 2, func(s *vcs.Session, args []string) error {
		return s.Fetch(args[0], args[1])
	}))
}
