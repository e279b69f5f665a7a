package cmd

import (
	"fmt"
	"io"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/croupier/internal/card"
	"github.com/arcanaland/croupier/internal/deck"
	"github.com/arcanaland/croupier/internal/logs"
	"github.com/arcanaland/croupier/internal/poker"
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Shuffle a deck, deal five-card hands and announce the winner",
	Long: `Deal shuffles a fresh 52-card deck, deals five cards to each hand one at
a time, prints every hand with its poker rank and announces the winner.

When several hands tie for the best rank the lowest numbered hand wins.

Examples:
  croupier deal
  croupier deal --hands 6
  croupier deal --seed 42`,
	Args: cobra.NoArgs,
	RunE: runDeal,
}

func init() {
	RootCmd.AddCommand(dealCmd)
	addDealFlags(dealCmd)
}

func addDealFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("hands", "n", 0, "Number of hands to deal (default from config, 4)")
	cmd.Flags().Int64("seed", 0, "Seed for a reproducible shuffle")
}

func runDeal(cmd *cobra.Command, args []string) error {
	numHands := cfg.Hands
	if cmd.Flags().Changed("hands") {
		numHands, _ = cmd.Flags().GetInt("hands")
	}

	hands, err := deck.Deal(deck.New(), shufflerFor(cmd), poker.HandSize, numHands)
	if err != nil {
		return fmt.Errorf("error dealing: %w", err)
	}
	logs.Debug("dealt %d hands of %d cards", len(hands), poker.HandSize)

	_, err = printShowdown(cmd.OutOrStdout(), hands)
	return err
}

// shufflerFor picks a seeded shuffler when a seed was given by flag or
// config and a crypto shuffler otherwise
func shufflerFor(cmd *cobra.Command) deck.Shuffler {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		logs.Debug("shuffling with seed %d from flag", seed)
		return deck.NewSeededShuffler(seed)
	}
	if cfg.Seed != nil {
		logs.Debug("shuffling with seed %d from config", *cfg.Seed)
		return deck.NewSeededShuffler(*cfg.Seed)
	}
	return deck.NewCryptoShuffler()
}

// printShowdown prints every hand with its rank followed by the winner
// and returns the winning index
func printShowdown(w io.Writer, hands []card.Hand) (int, error) {
	ranks, err := poker.EvaluateAll(hands)
	if err != nil {
		return 0, err
	}
	winner, err := poker.Best(ranks)
	if err != nil {
		return 0, err
	}

	for i, h := range hands {
		fmt.Fprintln(w, colorize.CyanString("Hand %d:", i+1))
		fmt.Fprintln(w, formatHand(h))
		fmt.Fprintf(w, "→ Poker Rank: %s\n\n", colorize.HiWhiteString("%s", ranks[i]))
	}

	fmt.Fprintln(w, colorize.HiYellowString("🏆 Hand %d wins!", winner+1))
	return winner, nil
}
