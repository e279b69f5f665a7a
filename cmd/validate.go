package cmd

import (
	"fmt"
	"strings"

	"github.com/arcanaland/croupier/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [hand]",
	Short: "Check that a typed hand is a well-formed five-card hand",
	Long: `Validate checks a hand written on the command line before it is ranked.
It reports cards that cannot be parsed and hands of the wrong size as errors,
and repeated cards as warnings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")
		out := cmd.OutOrStdout()

		v := validator.NewValidator(input)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ Hand '%s' is a valid five-card hand.\n", formatHand(v.Hand()))
		} else {
			fmt.Fprintf(out, "❌ Hand '%s' has %d validation errors:\n", input, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
