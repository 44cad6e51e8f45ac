package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/grid"
	"github.com/domino14/wordsearch/scanner"
)

var (
	GitVersion string
)

func setupLogging(level string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
		logger = zerolog.New(output).Level(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
}

// run loads the grid, scans it, and writes the report to w. Any error
// means nothing was written.
func run(ctx context.Context, cfg *config.Config, w io.Writer) error {
	path := cfg.GetString(config.ConfigGridPath)
	g, err := grid.Load(path)
	if err != nil {
		return err
	}

	s := scanner.New(scanner.XMAS, scanner.WithThreads(cfg.GetInt(config.ConfigThreads)))
	start := time.Now()
	counts, err := s.ScanContext(ctx, g)
	if err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Int("total", counts.Total()).Msg("scan-done")

	var matches []scanner.Match
	if cfg.GetBool(config.ConfigListMatches) {
		matches = s.Matches(g)
	}
	report := scanner.NewReport(g, s.Target(), counts, matches)
	return report.Write(w, cfg.GetString(config.ConfigFormat))
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.GetString(config.ConfigLogLevel))
	log.Debug().Str("version", GitVersion).Msgf("Loaded config: %v", cfg.SanitizedSettings())

	if cfg.GetString(config.ConfigCPUProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigCPUProfile))
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		pprof.StopCPUProfile()
		log.Fatal().Err(err).Msg("wordsearch failed")
	}
}
