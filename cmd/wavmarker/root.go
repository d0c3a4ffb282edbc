package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cwbudde/wavmarker"
	"github.com/cwbudde/wavmarker/internal/config"
	"github.com/spf13/cobra"
)

const greeting = "Hello!"

var errMissingPath = errors.New("missing path argument")

func NewRootCmd() *cobra.Command {
	var (
		cfgFile   string
		activeCfg config.Config
	)

	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "wavmarker [path]",
		Short:         "Print the RIFF marker of a WAVE file",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded

			return setupLogger(loaded.LogLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := activeCfg
			if len(args) == 1 {
				cfg.Path = args[0]
			}

			return run(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.Flags(), defaults)

	return cmd
}

func run(cmd *cobra.Command, cfg config.Config) error {
	if cfg.Path == "" {
		return errMissingPath
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, greeting)

	header, err := wavmarker.ReadHeader(cfg.Path)
	if err != nil {
		return err
	}

	marker := header.Marker()
	slog.Debug("read header",
		"path", cfg.Path,
		"marker", marker.String(),
		"bytes", header.Len(),
		"wave", header.IsWAVE(),
	)

	if cfg.Strict {
		if err := marker.Check(); err != nil {
			return fmt.Errorf("%s: %w", cfg.Path, err)
		}
	}

	fmt.Fprintf(out, "Marker: %s\n", marker)

	return nil
}

// setupLogger configures the process-wide slog default logger. An unknown
// level leaves the current logger in place.
func setupLogger(levelStr string) error {
	lvl, err := parseLogLevel(levelStr)
	if err != nil {
		return err
	}

	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))

	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}
