package cmd

import (
	"fmt"

	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand("log", "Show commit history on the active branch", 0, func(s *vcs.Session, args []string) error {
		fmt.Print(s.Log())
		return nil
	}))

	rootCmd.AddCommand(NewRepoCommand("global-log", "Show every commit in the repository", 0, func(s *vcs.Session, args []string) error {
		fmt.Print(s.GlobalLog())
		return nil
	}))

	rootCmd.AddCommand(NewRepoCommand("find <message>", "Find commits with a given message", 1, func(s *vcs.Session, args []string) error {
		out, err := s.Find(args[0])
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}))
}
