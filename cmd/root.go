package cmd

import (
	"fmt"

	"github.com/arcanaland/croupier/internal/config"
	"github.com/arcanaland/croupier/internal/logs"
	"github.com/spf13/cobra"
)

// cfg holds the configuration loaded before every command runs
var cfg = config.Default()

// RootCmd represents the base command. Run without a subcommand it deals
// the standard game.
var RootCmd = &cobra.Command{
	Use:   "croupier",
	Short: "Deal poker hands and rank them",
	Long: `Croupier shuffles a standard 52-card deck, deals five-card poker hands
and ranks them from high card to royal flush to find the winner.

Run without a subcommand it deals four hands and announces the winning hand.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE:              runDeal,
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/croupier/config.toml)")
	RootCmd.PersistentFlags().String("color", "", "Color output: auto, always or never")
	RootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	addDealFlags(RootCmd)
}

// loadSettings loads the config file and applies flag overrides
func loadSettings(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.GetConfigFilePath()
	}

	loaded, err := config.LoadConfigFrom(configPath)
	if err != nil {
		return err
	}

	if colorFlag, _ := cmd.Flags().GetString("color"); colorFlag != "" {
		loaded.Color = colorFlag
	}
	if levelFlag, _ := cmd.Flags().GetString("log-level"); levelFlag != "" {
		loaded.LogLevel = levelFlag
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	if err := logs.SetLevel(loaded.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	applyColorMode(loaded.Color)

	logs.Debug("using config %s", configPath)
	cfg = loaded
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
