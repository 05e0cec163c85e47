package cmd

import (
	"fmt"
	"log/slog"

	"github.com/localvcs/snap/internal/fsutil"
	"github.com/localvcs/snap/internal/objects"
	"github.com/localvcs/snap/internal/vcs"
	"github.com/localvcs/snap/internal/vcserr"
	"github.com/spf13/cobra"
)

// Handler is a repository command's body: it receives the open session and
// the command's positional operands.
type Handler func(s *vcs.Session, args []string) error

// NewRepoCommand builds a cobra.Command that opens the repository, enforces
// spec.md §6's exact operand count (wrong count → "Incorrect operands."),
// runs handler, and persists the session's control record — the same
// load/mutate/save shape as every command in spec.md §5, grounded in the
// teacher's NewCommand/NewRepoCommand factory
// (_examples/NahomAnteneh-vec/cmd/factory.go), generalized from the
// teacher's "at least N" rule to spec.md's exact count.
func NewRepoCommand(use, short string, operands int, handler Handler) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != operands {
				fmt.Println("Incorrect operands.")
				return nil
			}
			return runRepoCommand(handler, args)
		},
	}
}

// NewVariadicRepoCommand is NewRepoCommand for checkout, diff, and config,
// whose operand shapes vary (spec.md §6 lists three distinct checkout
// invocations); the handler itself validates args and prints "Incorrect
// operands." for any unrecognized shape.
func NewVariadicRepoCommand(use, short string, handler Handler) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepoCommand(handler, args)
		},
	}
}

func runRepoCommand(handler Handler, args []string) error {
	root, err := fsutil.FindRoot(objects.DirName())
	if err != nil {
		fmt.Println("Not in an initialized Gitlet directory.")
		return nil
	}
	s, err := vcs.Open(root)
	if err != nil {
		return reportAndAbort(err)
	}

	handlerErr := handler(s, args)
	if ue, ok := vcserr.AsUser(handlerErr); ok {
		fmt.Println(ue.Message)
		if err := s.Save(); err != nil {
			return err
		}
		return nil
	}
	if handlerErr != nil {
		return reportAndAbort(handlerErr)
	}

	return s.Save()
}

// reportAndAbort handles the two remaining error kinds spec.md §7
// describes: a MissingObjectError is repository corruption, logged as a
// diagnostic via slog and aborted without touching the control record; any
// other error is an I/O fault that propagates to Execute for a non-zero
// exit.
func reportAndAbort(err error) error {
	if me, ok := vcserr.AsMissing(err); ok {
		slog.Error("repository corruption detected", "kind", me.Kind, "digest", me.Digest)
	}
	return err
}
