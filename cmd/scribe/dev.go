package main

import (
	"github.com/spf13/cobra"

	"github.com/mlindert/scribe"
)

func newDevCommand() *cobra.Command {
	var drafts bool
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long:  "Renders the site, serves it locally, and re-renders with browser live reload on changes to the input directories.",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := scribe.ReadConf(confPath)
			if err != nil {
				return err
			}
			base := scribe.NewLogger(logLevel)

			if err := scribe.Build(conf, drafts, base.GetLogger("site")); err != nil {
				return err
			}

			if host != "" {
				conf.Serve.Host = host
			}
			if port != 0 {
				conf.Serve.Port = port
			}

			server := scribe.NewDevServer(conf.OutDir, base.GetLogger("serve"))

			go func() {
				err := scribe.WatchAndRebuild(conf, drafts, base.GetLogger("watch"), server.NotifyReload)
				if err != nil {
					base.GetLogger("watch").Fatal("watcher stopped", "error", err)
				}
			}()

			return server.ListenAndServe(conf.Serve.Addr())
		},
	}

	cmd.Flags().BoolVar(&drafts, "drafts", false, "Include posts with the draft flag")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind the dev server to (overrides config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port for the dev server (overrides config)")
	return cmd
}
