package cmd

import (
	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand("rm <file>", "Remove a file from the index and working tree", 1, func(s *vcs.Session, args []string) error {
		return s.Rm(args[0])
	}))
}
