package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	confPath string
	logLevel string
)

func main() {
	root := &cobra.Command{
		Use:          "scribe",
		Short:        "Static blog generator",
		Long:         "Renders a directory of markdown posts with YAML frontmatter into a static site, ordered by the numeric post id.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&confPath, "config", "c", "scribe.yaml", "Path to the site configuration file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	root.AddCommand(newBuildCommand())
	root.AddCommand(newDevCommand())
	root.AddCommand(newNewCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
