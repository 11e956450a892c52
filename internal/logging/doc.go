// Package logging provides structured logging for the anagram form client.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent unless a level is configured, so neither the TUI nor scripted CLI
// output is disturbed by default.
//
// # Log Levels
//
//   - Debug: validation passes, state transitions, request/response sizes
//   - Info: endpoint selection, discovery results
//   - Warn: failed submissions, non-2xx responses
//   - Error: unexpected failures (config write errors, program crashes)
//
// # Configuration
//
// The level and destination come from the --log-level and --log-file flags
// or the config file. The interactive form must log to a file:
//
//	if err := logging.Initialize(logging.Options{
//	    Level: "debug",
//	    File:  "/tmp/anagram-form.log",
//	}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Privacy
//
// Field contents are never logged; only their lengths and the resulting
// validation messages are recorded.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
