package cmd

import (
	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand("pull <remoteName> <remoteBranch>", "Fetch then merge a remote branch", 2, func(s *vcs.Session, args []string) error {
		return s.Pull(args[0], args[1])
	}))
}
