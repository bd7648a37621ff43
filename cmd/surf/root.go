package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/entrhq/surf/pkg/browser"
	"github.com/entrhq/surf/pkg/config"
	"github.com/entrhq/surf/pkg/logging"
	"github.com/entrhq/surf/pkg/mcp"
	"github.com/entrhq/surf/pkg/tools"
)

const version = "0.1.0"

// rootFlags holds the flag values for the root command. Flags override the
// config file and environment variables only when explicitly set.
type rootFlags struct {
	configPath string
	headless   bool
	logLevel   string
	logFormat  string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "surf",
		Short:         "MCP server exposing browser automation tools",
		Long:          "surf is an MCP server that drives a headless Chromium browser over stdio.\nClients connect on stdin/stdout; logs go to stderr.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, flags)
		},
	}

	cmd.PersistentFlags().AddFlagSet(flags.flagSet())

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func (f *rootFlags) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("surf", pflag.ContinueOnError)
	fs.StringVarP(&f.configPath, "config", "c", "", "path to YAML config file")
	fs.BoolVar(&f.headless, "headless", true, "run the browser without a visible window")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text or json")
	return fs
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and exit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "surf v%s\n", version)
		},
	}
}

func runServer(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("headless") {
		cfg.Headless = flags.headless
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = flags.logFormat
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	allowlist, err := config.NewHostAllowlist(cfg.AllowedHosts)
	if err != nil {
		return fmt.Errorf("invalid allowed_hosts: %w", err)
	}

	manager := browser.NewManager(browser.Options{
		Headless:            cfg.Headless,
		InstallBrowsers:     cfg.InstallBrowsers,
		ViewportWidth:       cfg.ViewportWidth,
		ViewportHeight:      cfg.ViewportHeight,
		DefaultTimeoutMs:    cfg.DefaultTimeoutMs,
		NavigationTimeoutMs: cfg.NavigationTimeoutMs,
		MaxTabs:             cfg.MaxTabs,
	}, allowlist, logger)

	registry := tools.NewRegistry()
	registry.MustRegister(browser.AllTools(manager)...)

	server := mcp.NewServer(mcp.ServerInfo{
		Name:    "surf",
		Version: version,
	}, registry, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithField("version", version).Info("surf server starting")

	runErr := server.Run(ctx, os.Stdin, os.Stdout)

	if err := manager.Shutdown(); err != nil {
		logger.WithError(err).Warn("browser shutdown reported errors")
	}

	if runErr != nil && ctx.Err() == nil {
		return runErr
	}
	logger.Info("surf server stopped")
	return nil
}
