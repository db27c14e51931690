package cmd

import (
	"errors"
	"fmt"

	"github.com/harrison/pickfile/internal/fileutil"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ErrUsage marks malformed or insufficient command-line arguments.
var ErrUsage = errors.New("usage error")

const usageLine = "pickfile [--bare] <path> <file_extension1> [file_extension2 ...]"

// NewRootCommand creates and returns the root cobra command for pickfile
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   usageLine,
		Short: "Pick a random file by extension from a directory tree",
		Long: `pickfile walks a directory tree and picks one file, uniformly at random,
among the entries whose extension matches one of the given extensions.

Matches are sampled as they are found, so the full list is never held in
memory. Symbolic links are never followed and unreadable directories are
skipped.

Extensions may be given with or without a leading dot and are matched
case-sensitively. Dotfiles such as .env match the extension "env".

Examples:
  pickfile ~/Pictures jpg png
  mpv "$(pickfile --bare ~/Music .flac .mp3)"`,
		Version:       Version,
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPick,
	}

	cmd.Flags().BoolP("bare", "b", false, "Also print the chosen path alone on stdout")
	cmd.Flags().String("config", "", "Path to config file (default: <user config dir>/pickfile/config.yaml)")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity: trace, debug, info, warn, error")
	cmd.Flags().String("color", "", "Color diagnostics: auto, always, never")
	cmd.Flags().Uint64("seed", 0, "Seed for the random source (0 = seed from the clock)")

	return cmd
}

// validateArgs requires a root path and at least one usable extension.
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: expected a path and at least one extension\nUsage: %s", ErrUsage, usageLine)
	}
	if fileutil.NewFilter(args[1:]...).Len() == 0 {
		return fmt.Errorf("%w: no usable extensions in %q\nUsage: %s", ErrUsage, args[1:], usageLine)
	}
	return nil
}
