package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/pwcheck/internal/analysis"
	"github.com/muurk/pwcheck/internal/config"
	"github.com/muurk/pwcheck/internal/logging"
	"github.com/muurk/pwcheck/internal/strength"
	"github.com/muurk/pwcheck/internal/tui"
	"github.com/muurk/pwcheck/internal/version"
)

// errReported marks a failure the command has already shown to the user
var errReported = errors.New("failure already reported")

// globalFlags holds the persistent flags shared by every command
type globalFlags struct {
	configPath string
	apiURL     string
	timeout    time.Duration
	theme      string
	logLevel   string
	logFile    string

	// Resolved in PersistentPreRunE
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "pwcheck",
		Short: "Password strength analyzer",
		Long: `A terminal client for a password strength analysis service.

Enter a password and pwcheck asks the service for a strength label, an
entropy estimate, a score and remediation feedback. Passwords are sent
only to the configured service and are never stored or logged.

If no command is specified, the interactive form launches automatically.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd, g)
		},
	}

	// Disable automatic completion command generation
	cmd.CompletionOptions.DisableDefaultCmd = true

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	pf.StringVar(&g.apiURL, "api-url", "", "Base URL of the analysis service (default "+config.DefaultAPIURL+")")
	pf.DurationVar(&g.timeout, "timeout", 0, "Request timeout, e.g. 5s (default "+config.DefaultTimeout.String()+")")
	pf.StringVar(&g.theme, "theme", "", "Strength bar theme ("+strings.Join(strength.ThemeNames(), ", ")+")")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	pf.StringVar(&g.logFile, "log-file", "", "Write logs to this file instead of stderr")

	cmd.AddCommand(newCheckCmd(g))
	cmd.AddCommand(newHealthCmd(g))
	cmd.AddCommand(newConfigCmd(g))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup resolves the effective configuration (flag > env > file > default)
// and initializes logging.
func (g *globalFlags) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	g.applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logging.Initialize(logging.Options{Level: cfg.LogLevel, File: g.logFile}); err != nil {
		return err
	}

	g.cfg = cfg
	logging.Debug("Configuration resolved",
		zap.String("api_url", cfg.APIURL),
		zap.Duration("timeout", cfg.Timeout),
		zap.String("theme", cfg.Theme),
	)
	return nil
}

// applyFlags overrides cfg with the flags the user actually set
func (g *globalFlags) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIURL = g.apiURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = g.timeout
	}
	if flags.Changed("theme") {
		cfg.Theme = g.theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
}

func (g *globalFlags) newClient() (*analysis.Client, error) {
	return analysis.NewClient(g.cfg.APIURL, analysis.WithTimeout(g.cfg.Timeout))
}

func (g *globalFlags) themeOrDefault() strength.Theme {
	t, err := strength.ThemeByName(g.cfg.Theme)
	if err != nil {
		return strength.DefaultTheme()
	}
	return t
}

func runForm(cmd *cobra.Command, g *globalFlags) error {
	client, err := g.newClient()
	if err != nil {
		return err
	}

	logging.Info("Starting interactive form", zap.String("api_url", client.BaseURL))

	return tui.Run(cmd.Context(), client, tui.Options{
		Theme:      g.themeOrDefault(),
		ServiceURL: client.BaseURL,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pwcheck %s\n", version.Full())
		},
	}
}
