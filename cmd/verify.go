package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/croupier/internal/crosscheck"
)

// maxListedMismatches caps how many disagreeing pairs are printed
const maxListedMismatches = 10

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Cross-check hand ranking against a reference evaluator",
	Long: `Verify deals random pairs of hands and checks that every pair this tool
ranks as a win or a loss is ordered the same way by the reference evaluator
github.com/paulhankin/poker.

Pairs that tie here are accepted, since one pair, two pair, trips and quads
are ranked without kickers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, _ := cmd.Flags().GetInt("deals")
		if pairs < 1 {
			return fmt.Errorf("deals must be positive, got %d", pairs)
		}

		report, err := crosscheck.Run(shufflerFor(cmd), pairs)
		if err != nil {
			return fmt.Errorf("verification error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Compared %d pairs, %d ties accepted\n", report.Pairs, report.Ties)

		if report.Ok() {
			fmt.Fprintln(out, colorize.GreenString("✅ Rankings agree with the reference evaluator."))
			return nil
		}

		data := pterm.TableData{{"Hand A", "Rank A", "Hand B", "Rank B"}}
		for i, m := range report.Mismatches {
			if i == maxListedMismatches {
				break
			}
			data = append(data, []string{m.A.String(), m.RankA.String(), m.B.String(), m.RankB.String()})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return fmt.Errorf("error rendering table: %w", err)
		}
		fmt.Fprintln(out, table)
		return fmt.Errorf("%d of %d pairs ranked differently", len(report.Mismatches), report.Pairs)
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().Int("deals", 5000, "Number of hand pairs to compare")
	verifyCmd.Flags().Int64("seed", 0, "Seed for a reproducible run")
}
