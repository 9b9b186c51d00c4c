// Hexinspect is a read-only terminal hex viewer.
//
// It shows a file as rows of hex bytes with an ASCII column, and decodes the
// bytes under the cursor as integers and floats in the selected byte order.
//
// Usage:
//
//	hexinspect [flags] FILE
//
// See 'hexinspect --help' for available flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hexinspect/internal/config"
	"hexinspect/internal/logging"
	"hexinspect/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the values of the command line flags.
type options struct {
	configPath  string
	endian      string
	bytesPerRow int
	offset      string
	logLevel    string
	logFile     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "hexinspect [flags] FILE",
		Short: "Terminal hex viewer with a typed data inspector",
		Long: `A read-only hex viewer for the terminal.

Bytes are shown sixteen per row with their offsets and printable characters.
The panel below the grid decodes the bytes at the cursor as 8, 16, 32 and
64-bit integers and as 32 and 64-bit floats, in little or big endian.`,
		Version:       version.Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(cmd, args, opts)
		},
	}

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default "+config.ConfigPath()+")")
	flags.StringVar(&opts.endian, "endian", "little", "Initial byte order (little, big)")
	flags.IntVar(&opts.bytesPerRow, "bytes-per-row", 16, "Bytes shown per row (1-64)")
	flags.StringVar(&opts.offset, "offset", "0", "Initial cursor offset (decimal or 0x hex)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file (default "+logging.DefaultLogFile+")")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newScalarsCmd(opts))
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hexinspect %s\n", version.Full())
		},
	}
}
