// Package cmd wires spec.md §6's CLI surface to the internal/vcs
// orchestration layer using github.com/spf13/cobra, the way the teacher's
// cmd/root.go does. Grounded in
// _examples/NahomAnteneh-vec/cmd/root.go and factory.go.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "snap",
	Short:         "snap is a local, single-machine version-control system",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println("Please enter a command.")
			return nil
		}
		fmt.Println("No command with that name exists.")
		return nil
	},
}

// Execute runs the root command, mapping every error kind to spec.md §6's
// exit-code contract: user errors already printed their message and return
// nil from the handler, so only a genuine fault reaches here, and it exits
// non-zero (spec.md §7's I/O-error case).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
