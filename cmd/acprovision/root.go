package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	activecampaign "github.com/lo5an/ActiveCampaignDemo"
	"github.com/lo5an/ActiveCampaignDemo/internal/config"
	"github.com/lo5an/ActiveCampaignDemo/internal/logutil"
	"github.com/lo5an/ActiveCampaignDemo/logger"
	"github.com/lo5an/ActiveCampaignDemo/provision"
	"github.com/lo5an/ActiveCampaignDemo/rate"
	"github.com/lo5an/ActiveCampaignDemo/retry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errUsage = errors.New("please specify a file with credentials as the script argument")

type dependencies struct {
	Stdout io.Writer
	Stderr io.Writer

	// Transport and Now are overridden in tests.
	Transport http.RoundTripper
	Now       func() time.Time
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, deps dependencies) int {
	cmd := newRootCmd(deps)
	cmd.SetArgs(args)
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	failed, err := cmd.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
	if errors.Is(err, errUsage) {
		fmt.Fprint(deps.Stderr, failed.UsageString())
	}
	return 1
}

func newRootCmd(deps dependencies) *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "acprovision <credentials-file>",
		Short: "Provision ActiveCampaign test data and schedule a test campaign",
		Long: `Creates a test address (if none exists), a "Test List" (if missing),
five test contacts, a plain-text message and a campaign scheduled two
minutes from now. The credentials file is YAML with ac_url and ac_key.

"init" is a subcommand, so a credentials file with that exact name must
be given with a directory, e.g. "acprovision ./init".`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return provisionFromFile(cmd, v, args[0], deps)
		},
	}

	cmd.Flags().String("log-level", "", "Logging level: debug|info|warn|error (defaults to info).")
	cmd.Flags().String("log-format", "", "Logging format: text|json (defaults to text).")
	cmd.Flags().Duration("timeout", 0, "HTTP timeout per request (defaults to 10s).")
	_ = v.BindPFlag(config.KeyLogLevel, cmd.Flags().Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, cmd.Flags().Lookup("log-format"))
	_ = v.BindPFlag(config.KeyTimeout, cmd.Flags().Lookup("timeout"))

	cmd.AddCommand(newInitCmd())

	return cmd
}

func provisionFromFile(cmd *cobra.Command, v *viper.Viper, path string, deps dependencies) error {
	cfg, err := config.Load(v, path)
	if err != nil {
		return err
	}

	slogger, err := logutil.LoggerFromConfig(logutil.LoggerConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	log := logger.NewSlog(slogger)

	opts := []activecampaign.ConfigOption{
		activecampaign.WithTimeout(cfg.Timeout),
		activecampaign.WithLogger(log),
		activecampaign.WithRateLimiter(rate.NewTokenBucket(cfg.RateLimit, 1)),
		activecampaign.WithRetry(retry.NewExponentialRetry(retry.WithLogger(log))),
		activecampaign.WithRetryAttempts(cfg.RetryAttempts),
	}
	if deps.Transport != nil {
		opts = append(opts, activecampaign.WithTransport(deps.Transport))
	}
	client := activecampaign.NewClient(cfg.URL, cfg.APIKey, opts...)

	popts := []provision.Option{
		provision.WithLogger(log),
		provision.WithOutput(cmd.OutOrStdout()),
	}
	if deps.Now != nil {
		popts = append(popts, provision.WithClock(deps.Now))
	}

	report, err := provision.New(provision.FromClient(client), popts...).Run(cmd.Context())
	if err != nil {
		return err
	}

	slogger.Info("provisioning complete",
		"tag", report.Tag,
		"list_id", report.ListId,
		"list_created", report.ListCreated,
		"address_created", report.AddressCreated,
		"contacts", report.Contacts,
		"message_id", report.MessageId,
		"campaign_id", report.CampaignId,
		"send_at", report.SendAt,
	)
	return nil
}
