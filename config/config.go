package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/wordsearch/scanner"
)

const (
	ConfigGridPath    = "grid-path"
	ConfigLogLevel    = "log-level"
	ConfigFormat      = "format"
	ConfigThreads     = "threads"
	ConfigListMatches = "list-matches"
	ConfigCPUProfile  = "cpu-profile"
)

// DefaultGridPath is where the grid is read from if nothing else is given.
const DefaultGridPath = "sample-day4.txt"

type Config struct {
	*viper.Viper
}

// Load reads settings from the command-line args, then WORDSEARCH_*
// environment variables, then the defaults. A single positional argument
// is taken as the grid path.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet("wordsearch", pflag.ContinueOnError)
	fs.String(ConfigGridPath, DefaultGridPath, "path to the grid file")
	fs.String(ConfigLogLevel, "info", "log level: debug, info or disabled")
	fs.String(ConfigFormat, scanner.FormatText, "output format: text, json or yaml")
	fs.Int(ConfigThreads, 1, "number of goroutines to scan with")
	fs.Bool(ConfigListMatches, false, "also print every match found")
	fs.String(ConfigCPUProfile, "", "write a cpu profile to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("wordsearch")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		c.Set(ConfigGridPath, rest[0])
	default:
		return fmt.Errorf("expected at most one grid path, got %d arguments", len(rest))
	}

	switch f := c.GetString(ConfigFormat); f {
	case scanner.FormatText, scanner.FormatJSON, scanner.FormatYAML:
	default:
		return fmt.Errorf("unknown format %q", f)
	}
	switch ll := c.GetString(ConfigLogLevel); ll {
	case "debug", "info", "disabled":
	default:
		return fmt.Errorf("unknown log level %q", ll)
	}
	return nil
}

// DefaultConfig returns a config with every setting at its default.
func DefaultConfig() *Config {
	c := &Config{}
	if err := c.Load(nil); err != nil {
		panic(err)
	}
	return c
}

// SanitizedSettings returns the settings to log at startup. Unset
// optional paths are left out.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	if c.GetString(ConfigCPUProfile) == "" {
		delete(settings, ConfigCPUProfile)
	}
	return settings
}
