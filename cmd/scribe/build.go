package main

import (
	"github.com/spf13/cobra"

	"github.com/mlindert/scribe"
)

func newBuildCommand() *cobra.Command {
	var drafts bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site once",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := scribe.ReadConf(confPath)
			if err != nil {
				return err
			}
			log := scribe.NewLogger(logLevel).GetLogger("site")
			return scribe.Build(conf, drafts, log)
		},
	}

	cmd.Flags().BoolVar(&drafts, "drafts", false, "Include posts with the draft flag")
	return cmd
}
