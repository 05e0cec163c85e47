package cmd

import (
	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand("add <file>", "Add a file to the index", 1, func(s *vcs.Session, args []string) error {
		return s.Add(args[0])
	}))
}
