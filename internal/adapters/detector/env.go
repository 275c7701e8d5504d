// Package detector provides environment detection for output selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the event stream.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeColor renders colored event lines for interactive terminals.
	ModeColor
	// ModePlain renders plain lines for CI and log capture.
	ModePlain
)

// DetectEnvironment returns the recommended output mode: plain when
// stdout is not a TTY or a CI environment variable is set.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModePlain
	}
	return ModeColor
}

// ResolveMode applies a user override flag to auto-detection.
// userFlag should be one of: "auto", "color", "plain", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "color":
		return ModeColor
	case "plain", "ci":
		return ModePlain
	default:
		return autoDetected
	}
}
