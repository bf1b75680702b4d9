package ui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes - exported for use across packages.
var (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[91m"
	ColorGreen  = "\033[92m"
	ColorYellow = "\033[93m"
	ColorBlue   = "\033[94m"
	ColorCyan   = "\033[96m"
)

// Unicode symbols
var (
	SymbolCheck   = "✅"
	SymbolCross   = "❌"
	SymbolInfo    = "📁"
	SymbolWarning = "⚠️"
	SymbolMusic   = "🎵"
	SymbolBranch  = "↳"
)

func init() {
	InitColorPalette()
}

// InitColorPalette upgrades the basic palette when the terminal supports it
// and strips colors entirely when stdout is not a terminal (piped output
// keeps the progress lines machine-readable).
func InitColorPalette() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		disableColors()
		return
	}
	if SupportsTruecolor() {
		ColorRed = "\033[1;38;2;224;108;117m"
		ColorGreen = "\033[1;38;2;152;195;121m"
		ColorYellow = "\033[1;38;2;229;192;123m"
		ColorBlue = "\033[1;38;2;143;188;255m"
		ColorCyan = "\033[1;38;2;136;220;255m"
		return
	}
	if Supports256Color() {
		ColorRed = "\033[1;38;5;210m"
		ColorGreen = "\033[1;38;5;114m"
		ColorYellow = "\033[1;38;5;222m"
		ColorBlue = "\033[1;38;5;111m"
		ColorCyan = "\033[1;38;5;159m"
	}
}

func disableColors() {
	ColorReset = ""
	ColorRed = ""
	ColorGreen = ""
	ColorYellow = ""
	ColorBlue = ""
	ColorCyan = ""
}

// SupportsTruecolor checks if the terminal supports 24-bit color.
func SupportsTruecolor() bool {
	termEnv := strings.ToLower(os.Getenv("TERM"))
	colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
	return strings.Contains(colorTerm, "truecolor") ||
		strings.Contains(colorTerm, "24bit") ||
		strings.Contains(termEnv, "truecolor") ||
		strings.Contains(termEnv, "24bit")
}

// Supports256Color checks if the terminal supports 256 colors.
func Supports256Color() bool {
	termEnv := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(termEnv, "256color")
}
