package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arcanaland/patience/internal/session"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Replay a list of moves and print the resulting table",
	Long: `Show deals a game from the seed, replays the moves given with --moves
and prints the table. Moves are separated by spaces or commas:

  n, next       move the cursor forward
  p, prev       move the cursor back
  s, select     pick up under the cursor, or drop on the target
  d, deal       turn cards from the stock
  c, cancel     put carried cards back

Examples:
  patience show --seed 42 --moves "n n s s"
  patience show --seed 42 --moves d,d,n,s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := replay(cmd)
		if s != nil {
			printTable(s.Table())
		}
		return err
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("moves", "m", "", "Moves to replay after the deal")
}

// replay deals from the seed and applies --moves. The session is returned
// even when a move fails so the position reached can still be shown.
func replay(cmd *cobra.Command) (*session.Session, error) {
	moves, _ := cmd.Flags().GetString("moves")
	actions, err := session.ParseScript(moves)
	if err != nil {
		return nil, fmt.Errorf("error parsing moves: %w", err)
	}

	s := session.New(newTable(cmd), slog.Default())
	if err := s.Run(actions); err != nil {
		return s, err
	}
	return s, nil
}
