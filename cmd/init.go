package cmd

import (
	"fmt"
	"os"

	"github.com/localvcs/snap/internal/vcs"
	"github.com/localvcs/snap/internal/vcserr"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty repository in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 {
			fmt.Println("Incorrect operands.")
			return nil
		}
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := vcs.Init(wd); err != nil {
			if ue, ok := vcserr.AsUser(err); ok {
				fmt.Println(ue.Message)
				return nil
			}
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
