/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vendormax/apiserver/config"
	"github.com/vendormax/apiserver/internal/mail"
	"github.com/vendormax/apiserver/internal/notify"
)

// mailerCmd represents the mailer command. It runs the worker that consumes
// queued password-reset messages and delivers them over SMTP.
var mailerCmd = &cobra.Command{
	Use:   "mailer",
	Short: "Starts the password-reset mailer worker",
	Long: `Starts the mailer worker. It subscribes to the reset-email queue and
sends each queued message via SMTP. Failed sends are nacked and requeued.

	apiserver mailer
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig()

		backend, err := notify.OpenBackend(cmd.Context(), cfg.Notify)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to connect notify backend: %v\n", err)
			os.Exit(1)
		}
		notifier := notify.New(backend, cfg.Notify.Queue)
		defer notifier.Close()

		mailer, err := mail.NewMailer(cfg.SMTP)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to configure mailer: %v\n", err)
			os.Exit(1)
		}

		err = notifier.ConsumePasswordResets(cmd.Context(), func(ctx context.Context, email notify.ResetEmail) error {
			if sendErr := mailer.SendPasswordReset(ctx, email); sendErr != nil {
				fmt.Fprintf(os.Stderr, "failed to send reset email to %s: %v\n", email.Email, sendErr)
				return sendErr
			}
			return nil
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "mailer error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mailerCmd)
}
