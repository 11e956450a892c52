package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/anagram-form/internal/config"
	"github.com/muurk/anagram-form/internal/ui"
)

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetEndpointCmd)

	rootCmd.AddCommand(configCmd)
}

// configCmd groups config file management. It replaces the root setup so
// that a broken config file can still be inspected and replaced.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the anagram-form config file",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(false)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Example: `  anagram-form config init
  anagram-form config init --config ./anagram-form.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefaultConfig(configPath)
		if err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Config file created",
			ui.Param{Key: "Path", Value: path},
			ui.Param{Key: "Endpoint", Value: config.DefaultEndpoint},
		)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := displayPath()
		if err != nil {
			return err
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}

		effective, err := loaded.ResolveEndpoint(endpointFlag)
		if err != nil {
			return fmt.Errorf("invalid --endpoint: %w", err)
		}

		level := loaded.Logging.Level
		if level == "" {
			level = "off"
		}
		format := loaded.Logging.Format
		if format == "" {
			format = "text"
		}
		scanner := newScanner(0, loaded)

		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Configuration",
			ui.Param{Key: "Path", Value: path},
			ui.Param{Key: "Endpoint", Value: effective},
			ui.Param{Key: "Log level", Value: level},
			ui.Param{Key: "Log file", Value: loaded.Logging.File},
			ui.Param{Key: "Log format", Value: format},
			ui.Param{Key: "mDNS service", Value: scanner.ServiceType},
			ui.Param{Key: "mDNS timeout", Value: scanner.Timeout.String()},
		)
		return nil
	},
}

var configSetEndpointCmd = &cobra.Command{
	Use:     "set-endpoint <url>",
	Short:   "Store the anagram service base URL",
	Example: `  anagram-form config set-endpoint http://192.168.1.20:8000`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ValidateEndpoint(args[0]); err != nil {
			return err
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}

		resolved, err := loaded.ResolveEndpoint(args[0])
		if err != nil {
			return err
		}
		loaded.Endpoint = resolved

		if err := loaded.Save(configPath); err != nil {
			return err
		}

		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Endpoint saved",
			ui.Param{Key: "Endpoint", Value: loaded.Endpoint},
		)
		return nil
	},
}

// displayPath returns the config file path in use
func displayPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
