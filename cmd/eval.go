package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/croupier/internal/card"
	"github.com/arcanaland/croupier/internal/poker"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval [hand...]",
	Short: "Rank hands typed on the command line",
	Long: `Eval ranks one or more five-card hands. Each argument is one hand with
cards written as rank and suit letter, separated by spaces or commas.
Ranks are 2-10 (or T), J, Q, K and A; suits are s, h, d and c.

With two or more hands the winner is announced as well.

Examples:
  croupier eval "As Ks Qs Js Ts"
  croupier eval "Kh Kd 2c 4s 9h" "7c 8c 9c Jc 2c"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hands := make([]card.Hand, 0, len(args))
		for i, arg := range args {
			h, err := card.ParseHand(arg)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i+1, err)
			}
			hands = append(hands, h)
		}

		if len(hands) == 1 {
			return printRank(cmd, hands[0])
		}
		_, err := printShowdown(cmd.OutOrStdout(), hands)
		return err
	},
}

func init() {
	RootCmd.AddCommand(evalCmd)
}

// printRank prints a single hand and its rank
func printRank(cmd *cobra.Command, h card.Hand) error {
	rank, err := poker.Evaluate(h)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatHand(h))
	fmt.Fprintf(out, "→ Poker Rank: %s\n", colorize.HiWhiteString("%s", rank))
	return nil
}
