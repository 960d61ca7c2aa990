package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/patience/internal/deck"
)

// dealCmd prints a freshly dealt table
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal a new game and print the table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printTable(newTable(cmd))
		return nil
	},
}

// deckCmd lists the shuffled deck in stock order
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "List the shuffled deck for a seed",
	Long: `Deck prints the 52 cards in the order the shuffle produced them.
The last 28 cards go to the tableau, the first 24 stay in the stock.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := gameSeed(cmd)
		cards := deck.New(seed)

		fmt.Printf("seed %d\n", seed)
		for row := 0; row < len(cards); row += 13 {
			labels := make([]string, 0, 13)
			for _, c := range cards[row:min(row+13, len(cards))] {
				labels = append(labels, c.String())
			}
			fmt.Println(strings.Join(labels, " "))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)
	RootCmd.AddCommand(deckCmd)
}
