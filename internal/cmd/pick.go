package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/harrison/pickfile/internal/config"
	"github.com/harrison/pickfile/internal/display"
	"github.com/harrison/pickfile/internal/fileutil"
	"github.com/harrison/pickfile/internal/logger"
	"github.com/harrison/pickfile/internal/picker"
	"github.com/harrison/pickfile/internal/sampler"
	"github.com/spf13/cobra"
)

func runPick(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rootArg := args[0]
	filter := fileutil.NewFilter(args[1:]...)

	// billy's osfs is rooted at "/", so the walk needs an absolute root.
	root, err := resolveRoot(rootArg)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", rootArg, err)
	}

	diag := cmd.ErrOrStderr()
	log := logger.NewConsoleLogger(diag, cfg.LogLevel, logger.WithColorMode(cfg.Color))
	log.LogDebug(fmt.Sprintf("searching %s for extensions %v", root, filter.Extensions()))

	result := picker.New(osfs.New("/"),
		picker.WithSource(newSource(cmd)),
		picker.WithLogger(log),
	).Pick(root, filter)

	outcome := display.Outcome{
		Root:  rootArg,
		Found: result.Found,
		Path:  relativeTo(rootArg, root, result.Path),
	}
	outcome.Display(cmd.OutOrStdout(), diag, display.Options{
		Bare:  cfg.Bare,
		Color: logger.ShouldColor(diag, cfg.Color),
	})

	// Finding nothing is reported, not failed.
	return nil
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		var err error
		configPath, err = config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	var logLevelPtr, colorPtr *string
	var barePtr *bool
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &v
	}
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		colorPtr = &v
	}
	if cmd.Flags().Changed("bare") {
		v, _ := cmd.Flags().GetBool("bare")
		barePtr = &v
	}
	cfg.MergeWithFlags(logLevelPtr, barePtr, colorPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newSource(cmd *cobra.Command) sampler.Source {
	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		return sampler.NewClockSource()
	}
	return sampler.NewSeededSource(seed)
}

// resolveRoot turns the root as typed into an absolute path the walker can
// Lstat with the same answer the OS gives for the typed path.
//
// Everything before the final component is resolved through the real working
// directory, never $PWD, so "." and ".." mean what they mean to the kernel.
// The final component is left alone so a symlinked root stays a symlink. A
// trailing separator makes the OS follow a final link, so in that case the
// whole path is resolved.
func resolveRoot(rootArg string) (string, error) {
	sep := string(filepath.Separator)
	trimmed := strings.TrimRight(rootArg, sep)
	if trimmed == "" {
		return sep, nil
	}

	dir, base := "", trimmed
	if trimmed != rootArg {
		dir, base = trimmed, ""
	} else if i := strings.LastIndex(trimmed, sep); i >= 0 {
		dir, base = trimmed[:i+1], trimmed[i+1:]
	}

	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		realCwd, err := filepath.EvalSymlinks(cwd)
		if err != nil {
			return "", fmt.Errorf("failed to resolve working directory %s: %w", cwd, err)
		}
		// Concatenate rather than Join: Join would clean ".." as text before
		// links in dir are resolved.
		dir = realCwd + sep + dir
	}

	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		// Missing parent; the walker's Lstat reports it as skipped.
		return filepath.Join(dir, base), nil
	}
	return filepath.Join(realDir, base), nil
}

// relativeTo re-expresses path, found under root, in terms of the root the
// user typed so output mirrors the input.
func relativeTo(rootArg, root, path string) string {
	if path == "" {
		return ""
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	if rel == "." {
		return rootArg
	}
	// Not Join: cleaning "link/.." as text would point somewhere else.
	if strings.HasSuffix(rootArg, string(filepath.Separator)) {
		return rootArg + rel
	}
	return rootArg + string(filepath.Separator) + rel
}
