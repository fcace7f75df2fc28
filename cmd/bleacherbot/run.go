package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/bleacherbot/bleacherbot/config"
	"github.com/bleacherbot/bleacherbot/internal/pipeline"
)

func runCMD() *cobra.Command {
	var cfgPath string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Collect, compose and deliver one digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			var overrides []func(*config.Config)
			if dryRun {
				overrides = append(overrides, config.ForceDryRun)
			}
			cfg, err := config.LoadConfig(cfgPath, overrides...)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			p, err := pipeline.New(ctx, cfg, log.New(log.Writer(), "[PIPELINE] ", log.LstdFlags))
			if err != nil {
				return err
			}
			return p.Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./config.yaml)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "write an HTML preview instead of sending email")
	return cmd
}
