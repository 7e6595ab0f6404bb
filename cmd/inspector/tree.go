package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Print the scene tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		line := "tree"
		if len(args) == 1 {
			line += " " + args[0]
		}
		return execute(cmd, line)
	},
}

var execCmd = &cobra.Command{
	Use:   "exec <command> [args...]",
	Short: "Run a single console command",
	Long:  `Run a single console command, e.g. "inspector exec get self/Health".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		line := args[0]
		for _, arg := range args[1:] {
			line += " " + arg
		}
		return execute(cmd, line)
	},
}

func execute(cmd *cobra.Command, line string) error {
	instance, err := newApp(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err = instance.Console.Execute(line); err != nil {
		return fmt.Errorf("%v: %w", line, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(execCmd)
}
