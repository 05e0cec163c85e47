package cmd

import (
	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand("add-remote <name> <path>", "Record a remote repository path", 2, func(s *vcs.Session, args []string) error {
		return s.AddRemote(args[0], args[1])
	}))

	rootCmd.AddCommand(NewRepoCommand("rm-remote <name>", "Forget a remote repository", 1, func(s *vcs.Session, args []string) error {
		return s.RmRemote(args[0])
	}))
}
