package cmd

import (
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/arcanaland/croupier/internal/card"
	"github.com/arcanaland/croupier/internal/config"
)

var (
	redSuit     = colorize.New(colorize.FgRed, colorize.Bold)
	neutralSuit = colorize.New(colorize.FgHiWhite, colorize.Bold)
)

// applyColorMode switches colored output on or off for the whole process
func applyColorMode(mode string) {
	switch mode {
	case config.ColorAlways:
		colorize.NoColor = false
	case config.ColorNever:
		colorize.NoColor = true
	default:
		_, noColor := os.LookupEnv("NO_COLOR")
		colorize.NoColor = noColor || !term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// formatCard renders a card as rank symbol and suit glyph, red for hearts
// and diamonds
func formatCard(c card.Card) string {
	if c.Suit.IsRed() {
		return redSuit.Sprint(c.String())
	}
	return neutralSuit.Sprint(c.String())
}

// formatHand renders the cards of a hand separated by spaces
func formatHand(h card.Hand) string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = formatCard(c)
	}
	return strings.Join(parts, " ")
}

// terminalWidth returns the width of stdout or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapText splits text into lines no wider than width terminal columns.
// Suit glyphs count by display width, not by bytes.
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line, lineWidth := words[0], runewidth.StringWidth(words[0])
	for _, word := range words[1:] {
		w := runewidth.StringWidth(word)
		if lineWidth+1+w > width {
			lines = append(lines, line)
			line, lineWidth = word, w
			continue
		}
		line += " " + word
		lineWidth += 1 + w
	}
	return append(lines, line)
}
