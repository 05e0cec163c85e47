package cmd

import (
	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand("commit <message>", "Record changes to the repository", 1, func(s *vcs.Session, args []string) error {
		return s.Commit(args[0])
	}))
}
