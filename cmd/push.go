package cmd

import (
	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand("push <remoteName> <remoteBranch>", "Push local commits to a remote branch", 2, func(s *vcs.Session, args []string) error {
		return s.Push(args[0], args[1])
	}))
}
