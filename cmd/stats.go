package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/croupier/internal/config"
	"github.com/arcanaland/croupier/internal/deck"
	"github.com/arcanaland/croupier/internal/logs"
	"github.com/arcanaland/croupier/internal/poker"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Deal many random hands and tabulate how often each rank appears",
	Long: `Stats deals the requested number of random five-card hands, ten hands per
fresh deck, and compares how often each poker rank came up with its exact
probability over all 2,598,960 possible hands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deals, _ := cmd.Flags().GetInt("deals")
		if deals < 1 {
			return fmt.Errorf("deals must be positive, got %d", deals)
		}

		counts, err := tallyCategories(shufflerFor(cmd), deals)
		if err != nil {
			return err
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(statsTable(counts, deals)).Srender()
		if err != nil {
			return fmt.Errorf("error rendering table: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), table)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)

	statsCmd.Flags().Int("deals", 10000, "Number of hands to deal")
	statsCmd.Flags().Int64("seed", 0, "Seed for a reproducible run")
}

// tallyCategories deals n hands and counts their categories
func tallyCategories(s deck.Shuffler, n int) (map[poker.Category]int, error) {
	counts := map[poker.Category]int{}
	for dealt := 0; dealt < n; {
		batch := min(config.MaxHands, n-dealt)
		hands, err := deck.Deal(deck.New(), s, poker.HandSize, batch)
		if err != nil {
			return nil, err
		}

		ranks, err := poker.EvaluateAll(hands)
		if err != nil {
			return nil, err
		}
		for _, r := range ranks {
			counts[r.Category]++
		}
		dealt += batch
	}
	logs.Debug("tallied %d hands", n)
	return counts, nil
}

func statsTable(counts map[poker.Category]int, total int) pterm.TableData {
	data := pterm.TableData{{"Rank", "Hands", "Observed", "Expected"}}
	for i := len(poker.Categories) - 1; i >= 0; i-- {
		c := poker.Categories[i]
		data = append(data, []string{
			c.String(),
			fmt.Sprintf("%d", counts[c]),
			fmt.Sprintf("%.4f%%", 100*float64(counts[c])/float64(total)),
			fmt.Sprintf("%.4f%%", 100*poker.Probability(c)),
		})
	}
	return data
}
