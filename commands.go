package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"hexinspect/internal/buffer"
	"hexinspect/internal/config"
	"hexinspect/internal/editor"
	"hexinspect/internal/logging"
	"hexinspect/internal/render"
	"hexinspect/internal/session"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func newConfigCmd(opts *options) *cobra.Command {
	var write bool

	// configCmd shows or stores the effective configuration
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration hexinspect would start with, after applying the
config file and any flags given on the command line.

With --write the configuration is saved to the config file instead.`,
		Example: `  # Show the effective configuration
  hexinspect config

  # Make big endian the default
  hexinspect config --endian big --write`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, opts, write)
		},
	}
	configCmd.Flags().BoolVar(&write, "write", false, "Write the configuration to the config file")
	return configCmd
}

func runConfig(cmd *cobra.Command, opts *options, write bool) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	if !write {
		return cfg.Encode(cmd.OutOrStdout())
	}

	path := opts.configPath
	if path == "" {
		path = config.ConfigPath()
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return nil
}

// newScalarsCmd prints the decoded values at one offset without the viewer
func newScalarsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scalars FILE",
		Short: "Print the values decoded at an offset",
		Long: `Decode the bytes at --offset as every supported integer and float type
and print them as a table. Works without a terminal, so it can be used in
scripts and pipes.`,
		Example: `  # Values at the start of the file
  hexinspect scalars image.png

  # Big endian values at offset 0x10
  hexinspect scalars image.png --offset 0x10 --endian big`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScalars(cmd, args, opts)
		},
	}
}

func runScalars(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	offset, err := parseOffset(opts.offset)
	if err != nil {
		return err
	}

	buf, err := buffer.Open(args[0])
	if err != nil {
		return err
	}
	defer buf.Close()

	st := session.New(buf.Size(), session.Options{
		BytesPerRow: cfg.View.BytesPerRow,
		Endian:      cfg.Endian(),
		Offset:      offset,
	})

	tw := render.Build(buf, st).Panel.TableWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.Render()
	return nil
}

func runViewer(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	offset, err := parseOffset(opts.offset)
	if err != nil {
		return err
	}

	if err := logging.Initialize(cfg.Log.Level, cfg.Log.File); err != nil {
		return err
	}
	defer logging.Sync()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	buf, err := buffer.Open(args[0])
	if err != nil {
		return err
	}
	defer buf.Close()

	sessionOpts := session.Options{
		BytesPerRow: cfg.View.BytesPerRow,
		Endian:      cfg.Endian(),
		Offset:      offset,
	}
	logging.Info("Starting viewer",
		zap.String("path", buf.Filename()),
		zap.Int64("size", buf.Size()),
		zap.Int("bytes_per_row", sessionOpts.BytesPerRow),
		zap.String("endian", sessionOpts.Endian.String()),
		zap.Int64("offset", sessionOpts.Offset),
	)

	p := tea.NewProgram(editor.NewModel(buf, sessionOpts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("Program failed", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// loadConfig reads the config file and lays explicitly set flags over it.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, cfg, opts); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *options) error {
	flags := cmd.Flags()
	if flags.Changed("endian") {
		cfg.View.Endian = strings.ToLower(strings.TrimSpace(opts.endian))
	}
	if flags.Changed("bytes-per-row") {
		cfg.View.BytesPerRow = opts.bytesPerRow
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	return cfg.Validate()
}

// parseOffset accepts a decimal or 0x-prefixed hexadecimal offset. Leading
// zeros are decimal.
func parseOffset(s string) (int64, error) {
	s = strings.TrimSpace(s)

	digits, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, base = s[2:], 16
	}
	n, err := strconv.ParseInt(digits, base, 64)
	// no sign after the 0x prefix
	if err != nil || base == 16 && strings.ContainsAny(digits[:1], "+-") {
		return 0, &config.ValidationError{Field: "offset", Value: s, Reason: "want a decimal or 0x hex number"}
	}
	if n < 0 {
		return 0, &config.ValidationError{Field: "offset", Value: s, Reason: "must not be negative"}
	}
	return n, nil
}
