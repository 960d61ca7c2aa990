// Package session turns player intents into table moves.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/arcanaland/patience/internal/pile"
	"github.com/arcanaland/patience/internal/table"
)

// Action is a single player intent
type Action int

const (
	Next Action = iota
	Previous
	Select
	Deal
	Cancel
)

// ErrCarrying is returned by Deal while the hand holds cards
var ErrCarrying = errors.New("cannot deal while carrying cards")

func (a Action) String() string {
	switch a {
	case Next:
		return "next"
	case Previous:
		return "prev"
	case Select:
		return "select"
	case Deal:
		return "deal"
	case Cancel:
		return "cancel"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction accepts a long or one-letter action name
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "next", "n":
		return Next, nil
	case "prev", "previous", "p":
		return Previous, nil
	case "select", "s":
		return Select, nil
	case "deal", "d":
		return Deal, nil
	case "cancel", "c":
		return Cancel, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}

// ParseScript splits a move list on spaces or commas
func ParseScript(script string) ([]Action, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t'
	})
	actions := make([]Action, 0, len(fields))
	for i, f := range fields {
		a, err := ParseAction(f)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// Session drives one table
type Session struct {
	table  *table.Table
	logger *slog.Logger
}

// New wraps t; a nil logger discards action logs
func New(t *table.Table, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{table: t, logger: logger}
}

func (s *Session) Table() *table.Table {
	return s.table
}

// Apply performs one action
func (s *Session) Apply(a Action) error {
	t := s.table
	var err error
	switch a {
	case Next:
		t.GoNext()
	case Previous:
		t.GoPrevious()
	case Deal:
		if t.CardsInHand() {
			err = ErrCarrying
			break
		}
		t.DealFromStock()
	case Select:
		if t.CardsInHand() {
			err = s.drop()
		} else {
			err = s.pickUp()
		}
	case Cancel:
		if t.CardsInHand() {
			err = t.CancelMove()
		}
	default:
		err = fmt.Errorf("unknown action %d", int(a))
	}

	if err != nil {
		s.logger.Debug("action rejected", "action", a, "error", err)
		return err
	}
	s.logger.Debug("action applied", "action", a, "source", t.Source(), "target", t.Target(), "hand", t.Hand().Len())
	return nil
}

// Run applies actions in order and stops at the first failure
func (s *Session) Run(actions []Action) error {
	for i, a := range actions {
		if err := s.Apply(a); err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, a, err)
		}
	}
	return nil
}

func (s *Session) pickUp() error {
	t := s.table
	src := t.Source()

	var err error
	switch src.Pile.Kind() {
	case pile.KindStock:
		t.DealFromStock()
		return nil
	case pile.KindWaste, pile.KindFoundation:
		err = t.TakeTopCardFromStack(src.Pile)
	default:
		err = t.TakeSelectedCardsFromStack(src.Pile, src.Index)
	}
	if err != nil {
		return err
	}
	if t.CardsInHand() {
		t.GoNext()
	}
	return nil
}

func (s *Session) drop() error {
	t := s.table
	if t.Target() == t.Source().Pile {
		return t.CancelMove()
	}
	return t.PutHandOnTarget()
}
