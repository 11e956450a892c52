// Anagram-form is a terminal client for an anagram generation service.
//
// It validates a user name and a piece of text, posts them to the service,
// and shows the anagrams it returns, either in a full-screen form or as a
// one-shot command suitable for scripts.
//
// Usage:
//
//	anagram-form [command] [flags]
//
// Running without arguments launches the interactive form.
// See 'anagram-form --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/muurk/anagram-form/internal/logging"
	"github.com/muurk/anagram-form/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "anagram-form",
	Short: "Anagram generation client",
	Long: `A terminal client for an anagram generation service.

Enter your name and some text; the service rearranges it and the results
are listed in the order the service returned them.

If no command is specified, the interactive form will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the form when no subcommand provided
		return runTUI(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Assigned here: setup refers back to rootCmd
	rootCmd.PersistentPreRunE = setup

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("anagram-form %s\n", version.Full())
	},
}
