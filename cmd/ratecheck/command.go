package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/robotomize/ratecheck"
	"github.com/robotomize/ratecheck/internal/config"
	"github.com/robotomize/ratecheck/internal/logging"
	"github.com/robotomize/ratecheck/notify"
	"github.com/robotomize/ratecheck/provider/httputil"
	"github.com/robotomize/ratecheck/provider/mono"
	"github.com/robotomize/ratecheck/provider/privat"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "ratecheck [threshold]",
		Short:         "Check currency exchange rates and notify if they change.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, err := parseThreshold(args)
			if err != nil {
				return err
			}

			cfg, err := config.Load(envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			mailer, err := notify.NewSMTPMailer(notify.SMTPConfig{
				Host:     cfg.SMTP.Host,
				Port:     cfg.SMTP.Port,
				Username: cfg.SMTP.Username,
				Password: cfg.SMTP.Password,
				TLS:      cfg.SMTP.TLS,
			})
			if err != nil {
				return fmt.Errorf("smtp mailer: %w", err)
			}

			return realMain(cmd.Context(), cfg, threshold, cmd.OutOrStdout(), mailer)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "path to the dotenv file, ignored when missing")

	return cmd
}

func parseThreshold(args []string) (float64, error) {
	if len(args) == 0 {
		return ratecheck.DefaultThreshold, nil
	}

	threshold, err := strconv.ParseFloat(args[0], 64)
	if err != nil || math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		return 0, fmt.Errorf("%w: %q", ratecheck.ErrInvalidThreshold, args[0])
	}

	return threshold, nil
}

func realMain(ctx context.Context, cfg *config.Config, threshold float64, out io.Writer, mailer notify.Mailer) error {
	logger := logging.NewLogger("ratecheck", cfg.Logging.Level, os.Stderr)
	ctx = logging.WithLogger(ctx, logger)

	client := httputil.NewDefaultClient(cfg.Source.RequestTimeout)

	checker := ratecheck.New(
		privat.NewSource(client, privat.WithEndpoint(cfg.PrivatEndpoint())),
		mono.NewSource(client, mono.WithEndpoint(cfg.MonoEndpoint())),
		notify.New(mailer, notify.WithFrom(cfg.Mail.From), notify.WithTo(cfg.Mail.To)),
		ratecheck.WithOutput(out),
	)

	res, err := checker.Check(ctx, threshold)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	logger.Info("check finished", "threshold", threshold, "notified", len(res.Notified))

	return nil
}
