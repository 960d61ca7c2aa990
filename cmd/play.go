package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/patience/internal/render"
	"github.com/arcanaland/patience/internal/session"
)

const keyHelp = "←/h →/l move  space/enter select  d deal  c/esc cancel  q quit"

var errQuit = errors.New("quit")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game interactively",
	Long: `Play deals a game and reads single keys from the terminal:

  ←, h, ↑, k       move the cursor back
  →, l, ↓, j       move the cursor forward
  space, enter     pick up under the cursor, or drop on the target
  d                turn cards from the stock
  c, esc           put carried cards back
  q, ctrl-c        quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return fmt.Errorf("play needs an interactive terminal")
		}

		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("error entering raw mode: %w", err)
		}
		defer term.Restore(fd, oldState)

		s := session.New(newTable(cmd), slog.Default())
		return playLoop(s, os.Stdin, os.Stdout, renderOptions())
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
}

// playLoop redraws the table after every key until quit or end of input
func playLoop(s *session.Session, in io.Reader, out io.Writer, opts render.Options) error {
	message := ""
	buf := make([]byte, 8)
	for {
		draw(out, s, opts, message)
		message = ""

		n, err := in.Read(buf)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading key: %w", err)
		}

		action, err := keyAction(buf[:n])
		if errors.Is(err, errQuit) {
			fmt.Fprint(out, "\r\n")
			return nil
		}
		if err != nil {
			continue
		}
		if err := s.Apply(action); err != nil {
			message = err.Error()
		}
	}
}

// keyAction maps one key press, including arrow escape sequences, to an action
func keyAction(key []byte) (session.Action, error) {
	if len(key) >= 3 && key[0] == 0x1b && key[1] == '[' {
		switch key[2] {
		case 'C', 'B':
			return session.Next, nil
		case 'D', 'A':
			return session.Previous, nil
		}
		return 0, fmt.Errorf("unbound key %q", key)
	}
	if len(key) != 1 {
		return 0, fmt.Errorf("unbound key %q", key)
	}

	switch key[0] {
	case 'l', 'j':
		return session.Next, nil
	case 'h', 'k':
		return session.Previous, nil
	case ' ', '\r', '\n':
		return session.Select, nil
	case 'd':
		return session.Deal, nil
	case 'c', 0x1b:
		return session.Cancel, nil
	case 'q', 0x03:
		return 0, errQuit
	}
	return 0, fmt.Errorf("unbound key %q", key)
}

// draw clears the screen and prints the board; raw mode needs explicit carriage returns
func draw(out io.Writer, s *session.Session, opts render.Options, message string) {
	board := render.Table(s.Table(), opts)
	var b strings.Builder
	b.WriteString("\x1b[H\x1b[2J")
	fmt.Fprintf(&b, "seed %d\n\n", s.Table().Seed())
	b.WriteString(board)
	b.WriteString("\n" + keyHelp + "\n")
	if message != "" {
		b.WriteString(message + "\n")
	}
	fmt.Fprint(out, strings.ReplaceAll(b.String(), "\n", "\r\n"))
}
