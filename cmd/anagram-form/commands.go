package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/anagram-form/internal/anagram"
	"github.com/muurk/anagram-form/internal/config"
	"github.com/muurk/anagram-form/internal/discovery"
	"github.com/muurk/anagram-form/internal/logging"
	"github.com/muurk/anagram-form/internal/tui"
	"github.com/muurk/anagram-form/internal/ui"
	"github.com/muurk/anagram-form/internal/validation"
	"github.com/muurk/anagram-form/internal/version"
)

// Global flags
var (
	endpointFlag string
	configPath   string
	logLevel     string
	logFile      string
	logFormat    string
)

// Command flags
var (
	genName         string
	genText         string
	outputFormat    string
	requestTimeout  int
	healthTimeout   int
	discoverTimeout int
	discoverSave    bool
	discoverFirst   bool
)

// Resolved by setup before any command runs
var (
	cfg      *config.Config
	endpoint string
)

var errInvalidInput = errors.New("input is not valid")

func init() {
	rootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "", "Anagram service base URL (overrides "+config.EndpointEnvVar+" and the config file)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default is the per-user config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logging is off when empty")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json); default from config, else text")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(discoverCmd)
}

// setup loads the configuration, resolves the endpoint and starts logging
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	endpoint, err = cfg.ResolveEndpoint(endpointFlag)
	if err != nil {
		return fmt.Errorf("invalid --endpoint: %w", err)
	}

	if err := initLogging(cmd == rootCmd || cmd == tuiCmd); err != nil {
		return err
	}

	logging.Debug("Configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("endpoint", endpoint),
	)
	return nil
}

// initLogging starts the zap logger from flags, falling back to the
// config file. The interactive form owns the terminal, so it only logs
// when a file is configured.
func initLogging(interactive bool) error {
	opts, err := loggingOptions(interactive)
	if err != nil {
		return err
	}

	if err := logging.Initialize(opts); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

// loggingOptions merges the logging flags over the config file
func loggingOptions(interactive bool) (logging.Options, error) {
	opts := logging.Options{Level: logLevel, File: logFile}
	format := logFormat
	if cfg != nil {
		if opts.Level == "" {
			opts.Level = cfg.Logging.Level
		}
		if opts.File == "" {
			opts.File = cfg.Logging.File
		}
		if format == "" {
			format = cfg.Logging.Format
		}
	}
	if interactive && opts.File == "" {
		opts.Level = ""
	}

	switch strings.ToLower(format) {
	case "", "text":
	case "json":
		opts.JSON = true
	default:
		return opts, fmt.Errorf("unknown log format %q (use text or json)", format)
	}
	return opts, nil
}

// newClient builds a service client for the resolved endpoint
func newClient() *anagram.Client {
	client := anagram.NewClient(endpoint)
	client.UserAgent = "anagram-form/" + version.Version
	return client
}

// tuiCmd launches the interactive form
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive anagram form",
	Long: `Launch a full-screen form with a name field and a text field.

Fields are validated as you type; Generate is enabled once both are valid.
Results replace the form until you start a new anagram.`,
	Example: `  # Launch the form against the configured endpoint
  anagram-form tui
  # Or simply (tui is default):
  anagram-form

  # Use a specific service
  anagram-form --endpoint http://192.168.1.20:8000`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	client := newClient()
	model := tui.NewAppModel(client, endpoint)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running form: %w", err)
	}
	return nil
}

// generateCmd runs one request without the interactive form
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate anagrams from the command line",
	Long: `Validate a name and text with the same rules as the form, send them to
the anagram service, and print the returned anagrams in order.

Exits non-zero when the input is invalid or the request fails.`,
	Example: `  # Styled output
  anagram-form generate --name "Ann Lee" --text "listen"

  # JSON output for scripting
  anagram-form generate --name "Ann Lee" --text "listen" --format json

  # Give up after 10 seconds
  anagram-form generate --name "Ann Lee" --text "listen" --timeout 10`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genName, "name", "", "User name (1-10 words of 3-10 characters)")
	generateCmd.Flags().StringVar(&genText, "text", "", "Text to rearrange")
	generateCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json)")
	generateCmd.Flags().IntVar(&requestTimeout, "timeout", 0, "Request timeout in seconds (0 waits indefinitely)")
}

// generateError is the JSON shape of a failed generate
type generateError struct {
	Error      string            `json:"error"`
	Detail     string            `json:"detail,omitempty"`
	StatusCode int               `json:"status_code,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	jsonOutput, err := parseFormat(outputFormat)
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())

	res := validation.Validate(genName, genText)
	if !res.Valid {
		if jsonOutput {
			_ = printer.PrintJSON(generateError{Error: errInvalidInput.Error(), Fields: res.Errors()})
		} else {
			printer.PrintFieldErrors(
				ui.Param{Key: "Name", Value: res.NameError},
				ui.Param{Key: "Text", Value: res.TextError},
			)
		}
		return errInvalidInput
	}

	client := newClient()
	if requestTimeout > 0 {
		client.SetTimeout(time.Duration(requestTimeout) * time.Second)
	}

	req := anagram.Request{
		UserName:  strings.TrimSpace(genName),
		InputText: strings.TrimSpace(genText),
	}

	if !jsonOutput {
		printer.PrintHeader("Generate Anagrams", "anagram-form generate",
			ui.Param{Key: "Endpoint", Value: endpoint},
			ui.Param{Key: "Name", Value: req.UserName},
		)
	}

	resp, err := client.Generate(cmd.Context(), req)
	if err != nil {
		if jsonOutput {
			out := generateError{Error: anagram.AlertMessage(err), Detail: anagram.DetailOf(err)}
			var apiErr *anagram.Error
			if errors.As(err, &apiErr) {
				out.StatusCode = apiErr.StatusCode
			}
			_ = printer.PrintJSON(out)
		} else {
			printer.PrintError("Request failed", err, anagram.TroubleshootingHints(err))
		}
		return fmt.Errorf("generate failed: %w", err)
	}

	if jsonOutput {
		return printer.PrintJSON(resp)
	}
	printer.PrintAnagrams(resp.Anagrams)
	return nil
}

func parseFormat(format string) (bool, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return false, nil
	case "json":
		return true, nil
	default:
		return false, fmt.Errorf("unknown format %q (use text or json)", format)
	}
}

// healthCmd checks that the service is reachable
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the anagram service is reachable",
	Example: `  anagram-form health
  anagram-form health --endpoint http://localhost:8000 --timeout 2`,
	RunE: runHealth,
}

func init() {
	healthCmd.Flags().IntVar(&healthTimeout, "timeout", 5, "Request timeout in seconds")
}

func runHealth(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())

	client := newClient()
	if healthTimeout > 0 {
		client.SetTimeout(time.Duration(healthTimeout) * time.Second)
	}

	start := time.Now()
	if err := client.Health(cmd.Context()); err != nil {
		printer.PrintError("Service unavailable", err, anagram.TroubleshootingHints(err))
		return fmt.Errorf("health check failed: %w", err)
	}

	printer.PrintSuccess("Service is healthy",
		ui.Param{Key: "Endpoint", Value: endpoint},
		ui.Param{Key: "Latency", Value: time.Since(start).Round(time.Millisecond).String()},
	)
	return nil
}

// discoverCmd browses mDNS for anagram services
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find anagram services on the local network",
	Long: `Browse for anagram services using mDNS/DNS-SD discovery.

Services advertise as ` + discovery.ServiceType + `. With --save, a single discovered
service becomes the configured endpoint. With --first, browsing stops at the
first service that answers.`,
	Example: `  # Browse for 5 seconds (default)
  anagram-form discover

  # Longer scan, then store the endpoint
  anagram-form discover --timeout 15 --save

  # Use whichever service answers first
  anagram-form discover --first --save`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().IntVar(&discoverTimeout, "timeout", 0, "Scan timeout in seconds (default from config)")
	discoverCmd.Flags().BoolVar(&discoverSave, "save", false, "Save the discovered endpoint to the config file")
	discoverCmd.Flags().BoolVar(&discoverFirst, "first", false, "Stop at the first service that answers")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())

	scanner := newScanner(discoverTimeout, cfg)

	fmt.Fprintf(cmd.OutOrStdout(), "Scanning for %s services (timeout: %s)...\n\n", scanner.ServiceType, scanner.Timeout)

	services, err := scan(cmd, scanner)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(services) == 0 {
		printer.PrintError("No anagram services found", nil, []string{
			"Ensure the service is running and advertising " + scanner.ServiceType,
			"Verify this computer is on the same network segment",
			"Check that the firewall allows mDNS (UDP port 5353)",
			"Try increasing --timeout for slower networks",
			"Use --endpoint to specify the URL manually",
		})
		return nil
	}

	lines := make([]string, 0, len(services))
	for _, svc := range services {
		lines = append(lines, svc.String())
	}
	printer.PrintResult(ui.NewListResult(fmt.Sprintf("Found %d service(s)", len(services)), lines, ""))

	if !discoverSave {
		return nil
	}
	if len(services) > 1 {
		return fmt.Errorf("found %d services; choose one with 'anagram-form config set-endpoint <url>'", len(services))
	}

	cfg.Endpoint = services[0].BaseURL()
	if err := cfg.Save(configPath); err != nil {
		return err
	}
	printer.PrintSuccess("Endpoint saved", ui.Param{Key: "Endpoint", Value: cfg.Endpoint})
	return nil
}

// newScanner applies the --timeout flag, then the config file, then the
// package default.
func newScanner(flagTimeout int, c *config.Config) *discovery.Scanner {
	scanner := discovery.NewScanner()

	timeout := flagTimeout
	if timeout <= 0 && c != nil {
		timeout = c.Discovery.Timeout
	}
	if timeout > 0 {
		scanner.Timeout = time.Duration(timeout) * time.Second
	}

	if c != nil && c.Discovery.ServiceType != "" {
		scanner.ServiceType = c.Discovery.ServiceType
	}
	return scanner
}

// scan browses for the full timeout, or until one service answers with --first
func scan(cmd *cobra.Command, scanner *discovery.Scanner) ([]*discovery.Service, error) {
	if !discoverFirst {
		return scanner.Scan(cmd.Context())
	}

	svc, err := scanner.First(cmd.Context())
	if errors.Is(err, discovery.ErrNoService) {
		logging.Debug("No service answered", zap.Error(err))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []*discovery.Service{svc}, nil
}
