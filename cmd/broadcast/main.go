package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/broadcast/pkg/broadcast"
	"github.com/dmitrymomot/broadcast/pkg/logger"
	"github.com/dmitrymomot/broadcast/pkg/mailer"
	"github.com/dmitrymomot/broadcast/pkg/mailer/appsscript"
	"github.com/dmitrymomot/broadcast/pkg/roster"
)

// appConfig assembles the per-package configs, parsed from the environment.
type appConfig struct {
	Log       logger.Config
	API       appsscript.Config
	Mailer    mailer.Config
	Broadcast broadcast.Config
}

type options struct {
	file        string
	kind        string
	messageFile string
	reportPath  string
	delay       time.Duration
	yes         bool
	skipHealth  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "broadcast",
		Short: "Send a personalized email broadcast to a spreadsheet of recipients",
		Long: `broadcast reads recipients from a CSV or XLSX file, personalizes an email
template per recipient, and submits each email to an Apps Script gateway
with a fixed delay between sends. Without flags it walks through an
interactive flow; with --file, --message, and --yes it runs unattended.

The gateway is configured via APPS_SCRIPT_API_URL and APPS_SCRIPT_API_KEY
(a .env file in the working directory is picked up automatically).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "recipient file (CSV or XLSX); prompted when omitted")
	f.StringVar(&opts.kind, "kind", "", "recipient file kind: csv or xlsx (default: by extension)")
	f.StringVarP(&opts.messageFile, "message", "m", "", "YAML message file for non-interactive runs")
	f.StringVarP(&opts.reportPath, "report", "r", "", "write the delivery report to this path")
	f.DurationVar(&opts.delay, "delay", 0, "pause between sends (overrides BROADCAST_SEND_DELAY)")
	f.BoolVarP(&opts.yes, "yes", "y", false, "skip confirmations (requires --file and --message)")
	f.BoolVar(&opts.skipHealth, "skip-health-check", false, "proceed even if the gateway health check fails")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	var cfg appConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if cmd.Flags().Changed("delay") {
		cfg.Broadcast.Delay = opts.delay
	}
	if opts.skipHealth {
		cfg.Broadcast.SkipHealthCheck = true
	}

	params := broadcast.Params{
		FilePath:    opts.file,
		ReportPath:  opts.reportPath,
		AutoConfirm: opts.yes,
	}
	if opts.yes && (opts.file == "" || opts.messageFile == "") {
		return errors.New("--yes requires --file and --message")
	}
	if opts.kind != "" {
		kind, err := roster.ParseKind(opts.kind)
		if err != nil {
			return err
		}
		params.Kind = kind
	}
	if opts.messageFile != "" {
		msg, err := loadMessage(opts.messageFile)
		if err != nil {
			return err
		}
		params.Message = msg
	}

	log := logger.New(os.Stderr, cfg.Log)
	client := appsscript.New(cfg.API)

	runner := broadcast.NewRunner(
		client,
		client,
		broadcast.NewTerminalInput(cmd.InOrStdin(), cmd.OutOrStdout()),
		cfg.Broadcast,
		broadcast.WithLogger(log),
		broadcast.WithOutput(cmd.OutOrStdout()),
		broadcast.WithMailerConfig(cfg.Mailer),
	)

	_, err := runner.Run(cmd.Context(), params)
	return err
}

// loadMessage reads a message template from a YAML file.
func loadMessage(path string) (*mailer.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read message file: %w", err)
	}
	var msg mailer.Message
	if err := yaml.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("parse message file: %w", err)
	}
	return &msg, nil
}
