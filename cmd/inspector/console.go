package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const exitCommand = "exit"

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start an interactive console",
	Long:  `Start an interactive console over the demo scene; type "help" for commands and "exit" to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		instance, err := newApp(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(cmd.OutOrStdout(), "> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == exitCommand {
				break
			}
			// command errors are already printed to the console
			_ = instance.Console.Execute(line)
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
