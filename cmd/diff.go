package cmd

import (
	"fmt"

	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewVariadicRepoCommand("diff <file> | diff <commit> <file>", "Show a unified line-diff against HEAD or a commit", func(s *vcs.Session, args []string) error {
		var out string
		var err error
		switch len(args) {
		case 1:
			out, err = s.Diff(args[0])
		case 2:
			out, err = s.DiffCommit(args[0], args[1])
		default:
			fmt.Println("Incorrect operands.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}))
}
