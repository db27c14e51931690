package logger

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Color modes accepted by WithColorMode and the color config setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidColorMode reports whether mode is one of the accepted color modes.
func ValidColorMode(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// ShouldColor decides whether output to w should carry ANSI colors.
// In auto mode color is used only for terminals, and NO_COLOR disables it.
func ShouldColor(w io.Writer, mode string) bool {
	switch mode {
	case ColorAlways:
		return w != nil
	case ColorNever:
		return false
	}
	return isTerminal(w)
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
