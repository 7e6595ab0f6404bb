package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/inspector/config"
	"github.com/viant/inspector/internal/app"
	"github.com/viant/inspector/internal/version"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "inspector",
	Short: "Live object inspector and developer console",
	Long: `Inspector walks a running object graph, renders it as a tree and lets you
drill into members, edit values and call methods from a command console.

Without a running host it inspects a built-in demo scene.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("inspector %s\n", version.String()))
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(output io.Writer) (*app.App, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	return app.New(cfg, output)
}
