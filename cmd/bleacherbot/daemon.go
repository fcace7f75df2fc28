package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bleacherbot/bleacherbot/config"
	"github.com/bleacherbot/bleacherbot/internal/pipeline"
	"github.com/bleacherbot/bleacherbot/internal/sched"
	"github.com/bleacherbot/bleacherbot/internal/server"
)

func daemonCMD() *cobra.Command {
	var cfgPath string
	var immediate bool

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the digest on a cron schedule with a local preview server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := log.New(log.Writer(), "[DAEMON] ", log.LstdFlags)
			p, err := pipeline.New(ctx, cfg, log.New(log.Writer(), "[PIPELINE] ", log.LstdFlags))
			if err != nil {
				return err
			}

			go func() {
				if err := server.Run(cfg.Server.Address, p); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Printf("preview server stopped: %v", err)
				}
			}()

			if immediate {
				if err := p.Run(ctx); err != nil {
					logger.Printf("initial run failed: %v", err)
				}
			}

			err = sched.Run(ctx, cfg.Schedule.Cron, p.Run, logger)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./config.yaml)")
	cmd.Flags().BoolVar(&immediate, "now", false, "run once immediately before waiting for the schedule")
	return cmd
}
