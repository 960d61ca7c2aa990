package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/patience/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Replay moves and check the table for rule violations",
	Long: `Validate deals a game from the seed, replays the moves given with --moves
and checks the resulting table. It verifies that all 52 cards are present
exactly once, that every pile is ordered and faced correctly, and that the
cursor rests on a card that can be picked up.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := replay(cmd)
		if err != nil {
			return fmt.Errorf("replay error: %w", err)
		}

		results := validator.New(s.Table()).Validate()
		seed := s.Table().Seed()

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if results.Valid() {
			fmt.Printf("✅ Game %d is in a valid position.\n", seed)
		} else {
			fmt.Printf("❌ Game %d has %d validation errors:\n", seed, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("moves", "m", "", "Moves to replay before validating")
}
