package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return ColorModeNone
	}

	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("ALACRITTY_LOG") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	termLower := strings.ToLower(os.Getenv("TERM"))
	if termLower == "dumb" {
		return ColorModeNone
	}
	if strings.Contains(termLower, "truecolor") ||
		strings.Contains(termLower, "24bit") ||
		strings.Contains(termLower, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ParseColorMode resolves a flag/config value; "auto" and unknown values defer to DetectColorMode
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "none", "off", "plain":
		return ColorModeNone
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// OutputColorMode picks the mode for writing to f: redirected output gets plain glyphs
func OutputColorMode(f *os.File, requested string) ColorMode {
	if requested == "" || strings.EqualFold(requested, "auto") {
		if !IsTerminal(f) {
			return ColorModeNone
		}
	}
	return ParseColorMode(requested)
}
