package cmd

import (
	"fmt"

	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewRepoCommand("cat-file <digest>", "Print the raw decoded bytes of a stored blob or commit", 1, func(s *vcs.Session, args []string) error {
		out, err := s.CatFile(args[0])
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}))
}
