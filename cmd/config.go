package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/croupier/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the croupier config file",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := targetConfigPath(cmd)
		force, _ := cmd.Flags().GetBool("force")

		if _, err := config.WriteDefaultConfig(configPath, force); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", configPath)
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings in effect",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		encoded, err := cfg.Encode()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", targetConfigPath(cmd))
		fmt.Fprint(out, encoded)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

func targetConfigPath(cmd *cobra.Command) string {
	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		return configPath
	}
	return config.GetConfigFilePath()
}
