// Package config provides user configuration for the anagram form client.
//
// The configuration lives in a YAML file and holds the anagram service
// endpoint plus logging and discovery preferences. It is read through viper
// so that defaults, the file, and the ANAGRAM_ENDPOINT environment variable
// are layered in one place, and written back with yaml.v3.
//
// # Endpoint Resolution
//
// The effective endpoint is chosen in this order:
//  1. --endpoint flag (see ResolveEndpoint)
//  2. ANAGRAM_ENDPOINT environment variable
//  3. endpoint key in the config file
//  4. http://localhost:8000
//
// # File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/anagram-form/config.yaml or $HOME/.config/anagram-form/config.yaml
//   - macOS: $HOME/.config/anagram-form/config.yaml
//   - Windows: %LOCALAPPDATA%\anagram-form\config.yaml
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg.Endpoint = "http://anagrams.local:8000"
//	if err := cfg.Save(""); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// File writes are protected by a mutex and performed atomically via a
// temporary file and rename.
package config
