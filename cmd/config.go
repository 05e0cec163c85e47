package cmd

import (
	"fmt"

	"github.com/localvcs/snap/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewVariadicRepoCommand("config [--global] <key> <value>", "Set a configuration value", func(s *vcs.Session, args []string) error {
		global := false
		if len(args) > 0 && args[0] == "--global" {
			global = true
			args = args[1:]
		}
		if len(args) != 2 {
			fmt.Println("Incorrect operands.")
			return nil
		}
		return s.SetConfig(args[0], args[1], global)
	}))
}
