package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/tempo/internal/block"
)

// Styling for the non-palette parts of the output.
var (
	colorHeader = color.New(color.Bold)
	colorMuted  = color.New(color.FgWhite, color.Faint)
	colorStats  = color.New(color.FgGreen)
	colorWarn   = color.New(color.FgYellow)
)

// palette maps block color tokens to terminal colors. Unknown or empty
// tokens render unstyled.
var palette = map[block.Color]*color.Color{
	block.ColorBlue:   color.New(color.FgBlue),
	block.ColorRed:    color.New(color.FgRed),
	block.ColorGreen:  color.New(color.FgGreen),
	block.ColorYellow: color.New(color.FgYellow),
	block.ColorPurple: color.New(color.FgMagenta),
	block.ColorOrange: color.New(color.FgRed, color.Bold),
	block.ColorTeal:   color.New(color.FgCyan),
	block.ColorPink:   color.New(color.FgMagenta, color.Bold),
}

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// truncate shortens s to at most width runes, marking the cut with an
// ellipsis.
func truncate(s string, width int) string {
	if width < 2 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// paint styles text with the block color token's terminal color.
func paint(c block.Color, s string) string {
	if p, ok := palette[c]; ok {
		return p.Sprint(s)
	}
	return s
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

func formatStats(s string) string {
	return colorStats.Sprint(s)
}

func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}
