package main

import (
	"github.com/spf13/cobra"

	"github.com/mlindert/scribe"
)

func newNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Scaffold a post with the next free id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := scribe.ReadConf(confPath)
			if err != nil {
				return err
			}
			log := scribe.NewLogger(logLevel).GetLogger("site")
			_, err = scribe.NewPost(conf, args[0], log)
			return err
		},
	}
	return cmd
}
