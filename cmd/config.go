package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/patience/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the patience config file",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// the root command already loaded or created it
		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("# %s\n", config.GetConfigFilePath())
		if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
			return fmt.Errorf("error encoding config: %w", err)
		}
		return nil
	},
}

// configSetSeedCmd represents the config set-seed command
var configSetSeedCmd = &cobra.Command{
	Use:   "set-seed [seed]",
	Short: "Deal every new game from the same seed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", args[0], err)
		}
		if err := config.SetSeed(seed); err != nil {
			return fmt.Errorf("error setting seed: %w", err)
		}
		fmt.Printf("Seed set to: %d\n", seed)
		return nil
	},
}

// configClearSeedCmd represents the config clear-seed command
var configClearSeedCmd = &cobra.Command{
	Use:   "clear-seed",
	Short: "Deal every new game from a random seed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ClearSeed(); err != nil {
			return fmt.Errorf("error clearing seed: %w", err)
		}
		fmt.Println("Seed cleared; new games use a random seed.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetSeedCmd)
	configCmd.AddCommand(configClearSeedCmd)
}
