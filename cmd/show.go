package cmd

import (
	"fmt"
	"io"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/croupier/internal/card"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display information about a single card",
	Long: `Show displays a playing card with its suit, rank and ranking value.
Cards are written as rank and suit letter.

Examples:
  croupier show As
  croupier show 10h
  croupier show Qd`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.ParseCard(args[0])
		if err != nil {
			return fmt.Errorf("error reading card: %w", err)
		}

		displayCard(cmd.OutOrStdout(), c, terminalWidth())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// describeRank explains where a rank sits in the ranking order
func describeRank(r card.Rank) string {
	switch r {
	case card.Ace:
		return "Aces rank above every other card and also play low in the five-high straight A-2-3-4-5."
	case card.Two:
		return "Twos are the lowest rank. They only rank above an ace playing low in the straight A-2-3-4-5."
	}
	return fmt.Sprintf("%s rank above %s and below %s.", r.Plural(), (r - 1).Plural(), (r + 1).Plural())
}

// displayCard prints the card information
func displayCard(w io.Writer, c card.Card, width int) {
	color := "black"
	if c.Suit.IsRed() {
		color = "red"
	}

	infoLines := []string{
		colorize.CyanString("Card:  ") + formatCard(c) + " " + colorize.HiWhiteString("%s", c.Name()),
		colorize.CyanString("Code:  ") + colorize.HiWhiteString("%s", c.Code()),
		colorize.CyanString("Suit:  ") + colorize.HiWhiteString("%s · %s", c.Suit, c.Suit.Symbol()),
		colorize.CyanString("Rank:  ") + colorize.HiWhiteString("%s (value %d)", c.Rank.Name(), c.Rank.Value()),
		colorize.CyanString("Color: ") + colorize.HiWhiteString("%s", color),
	}

	// Leave room for the left padding
	infoLines = append(infoLines, "")
	infoLines = append(infoLines, wrapText(describeRank(c.Rank), width-4)...)

	fmt.Fprintln(w)
	for _, line := range infoLines {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w)
}
