package cmd

import (
	"fmt"

	"github.com/localvcs/snap/internal/vcs"
)

// checkout has three operand shapes per spec.md §6 ("checkout -- <file>",
// "checkout <commitId> -- <file>", "checkout <branch>"), so it uses
// NewVariadicRepoCommand instead of a fixed operand count.
func init() {
	rootCmd.AddCommand(NewVariadicRepoCommand("checkout", "Restore a file or switch branches", func(s *vcs.Session, args []string) error {
		switch {
		case len(args) == 1:
			return s.CheckoutBranch(args[0])
		case len(args) == 2 && args[0] == "--":
			return s.CheckoutFile(args[1])
		case len(args) == 3 && args[1] == "--":
			return s.CheckoutCommitFile(args[0], args[2])
		default:
			fmt.Println("Incorrect operands.")
			return nil
		}
	}))
}
