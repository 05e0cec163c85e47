package cmd

import (
	"fmt"

	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand("status", "Show the working tree and index status", 0, func(s *vcs.Session, args []string) error {
		out, err := s.Status()
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}))
}
