package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/bleacherbot/bleacherbot/config"
	"github.com/bleacherbot/bleacherbot/internal/pipeline"
	"github.com/bleacherbot/bleacherbot/internal/server"
)

func previewCMD() *cobra.Command {
	var cfgPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Run one dry-run digest and serve the rendered report locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgPath, config.ForceDryRun)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Address = addr
			}

			ctx := cmd.Context()
			p, err := pipeline.New(ctx, cfg, log.New(log.Writer(), "[PIPELINE] ", log.LstdFlags))
			if err != nil {
				return err
			}
			if err := p.Run(ctx); err != nil {
				return err
			}
			return server.Run(cfg.Server.Address, p)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./config.yaml)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.address)")
	return cmd
}
