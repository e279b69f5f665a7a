package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arcanaland/croupier/internal/card"
	"github.com/arcanaland/croupier/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the standard 52-card deck",
	Long:  `Commands for inspecting the standard 52-card deck.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards of the deck, optionally shuffled",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := deck.New()

		shuffle, _ := cmd.Flags().GetBool("shuffle")
		if shuffle || cmd.Flags().Changed("seed") {
			if err := d.Shuffle(shufflerFor(cmd)); err != nil {
				return err
			}
		}

		printDeck(cmd.OutOrStdout(), d.Cards())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)

	deckListCmd.Flags().BoolP("shuffle", "s", false, "Shuffle the deck before listing it")
	deckListCmd.Flags().Int64("seed", 0, "Seed for a reproducible shuffle (implies --shuffle)")
}

// printDeck prints the cards thirteen to a line
func printDeck(w io.Writer, cards []card.Card) {
	perLine := len(card.Ranks)
	for start := 0; start < len(cards); start += perLine {
		end := min(start+perLine, len(cards))
		fmt.Fprintln(w, formatHand(cards[start:end]))
	}
	fmt.Fprintf(w, "\n%d cards\n", len(cards))
}
