package session

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/patience/internal/card"
	"github.com/arcanaland/patience/internal/pile"
	"github.com/arcanaland/patience/internal/table"
	"github.com/arcanaland/patience/internal/validator"
)

func TestParseAction(t *testing.T) {
	for in, want := range map[string]Action{
		"n": Next, "NEXT": Next,
		"p": Previous, "prev": Previous, "previous": Previous,
		"s": Select, " select ": Select,
		"d": Deal, "deal": Deal,
		"c": Cancel, "cancel": Cancel,
	} {
		got, err := ParseAction(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAction("jump")
	assert.Error(t, err)
}

func TestParseScript(t *testing.T) {
	actions, err := ParseScript("n, n s\nd\tc")
	require.NoError(t, err)
	assert.Equal(t, []Action{Next, Next, Select, Deal, Cancel}, actions)

	actions, err = ParseScript("")
	require.NoError(t, err)
	assert.Empty(t, actions)

	_, err = ParseScript("n x")
	assert.EqualError(t, err, `move 2: unknown action "x"`)
}

func TestSelectOnStockDeals(t *testing.T) {
	s := New(table.New(9), nil)
	require.NoError(t, s.Apply(Select))
	assert.Equal(t, 3, s.Table().Waste().Len())
	assert.False(t, s.Table().CardsInHand())
}

func TestDealWhileCarrying(t *testing.T) {
	s := New(table.New(9), nil)
	require.NoError(t, s.Run([]Action{Next, Select}))
	require.True(t, s.Table().CardsInHand())

	err := s.Run([]Action{Next, Deal})
	assert.ErrorIs(t, err, ErrCarrying)
	assert.Contains(t, err.Error(), "move 2 (deal)")
}

func layout(t *testing.T) *Session {
	t.Helper()
	tb := table.New(1)
	for id := pile.Stock; id <= pile.Hand; id++ {
		tb.Pile(id).TakeAll()
	}
	tb.Pile(pile.Tableau1).Push(card.Card{Suit: card.Heart, Rank: card.Nine, FaceUp: true})
	tb.Pile(pile.Tableau2).Push(
		card.Card{Suit: card.Spade, Rank: card.Two},
		card.Card{Suit: card.Club, Rank: card.Ten, FaceUp: true},
	)
	return New(tb, nil)
}

func TestSelectMovesCardToFirstLegalTarget(t *testing.T) {
	s := layout(t)
	tb := s.Table()

	require.NoError(t, s.Run([]Action{Next, Select}))
	assert.Equal(t, table.Source{Pile: pile.Tableau1, Index: 0}, tb.Source())
	assert.Equal(t, pile.Tableau2, tb.Target())

	require.NoError(t, s.Apply(Select))
	assert.True(t, tb.Pile(pile.Tableau1).Empty())
	assert.Equal(t, 3, tb.Pile(pile.Tableau2).Len())
	assert.Equal(t, table.Source{Pile: pile.Tableau2, Index: 2}, tb.Source())
}

func TestSelectOnPickupPileCancels(t *testing.T) {
	s := layout(t)
	tb := s.Table()

	require.NoError(t, s.Run([]Action{Next, Select, Next}))
	require.Equal(t, pile.Tableau1, tb.Target())
	require.NoError(t, s.Apply(Select))

	assert.False(t, tb.CardsInHand())
	assert.Equal(t, 1, tb.Pile(pile.Tableau1).Len())
	assert.Equal(t, 2, tb.Pile(pile.Tableau2).Len())
}

func TestCancel(t *testing.T) {
	s := layout(t)
	require.NoError(t, s.Apply(Cancel), "cancel with an empty hand is a no-op")

	require.NoError(t, s.Run([]Action{Next, Select, Cancel}))
	assert.False(t, s.Table().CardsInHand())
	assert.Equal(t, 1, s.Table().Pile(pile.Tableau1).Len())
}

// TestRandomPlayKeepsInvariants drives many games with random input and
// checks the table after every step.
func TestRandomPlayKeepsInvariants(t *testing.T) {
	actions := []Action{Next, Next, Next, Previous, Select, Select, Deal, Cancel}
	for seed := uint64(0); seed < 25; seed++ {
		r := rand.New(rand.NewPCG(seed, 1))
		s := New(table.New(seed), nil)
		for step := range 400 {
			a := actions[r.IntN(len(actions))]
			err := s.Apply(a)
			if err != nil && !errors.Is(err, ErrCarrying) {
				t.Fatalf("seed %d step %d %s: %v", seed, step, a, err)
			}
			results := validator.New(s.Table()).Validate()
			if !results.Valid() {
				t.Fatalf("seed %d step %d %s: %v", seed, step, a, results.Errors)
			}
		}
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	script, err := ParseScript("n n n s n s d s n p s s c d d n s")
	require.NoError(t, err)

	play := func() *table.Table {
		s := New(table.New(77), nil)
		for _, a := range script {
			_ = s.Apply(a)
		}
		return s.Table()
	}
	a, b := play(), play()
	for id := pile.Stock; id <= pile.Hand; id++ {
		assert.Equal(t, a.Pile(id).Cards(), b.Pile(id).Cards(), id.String())
	}
	assert.Equal(t, a.Source(), b.Source())
	assert.Equal(t, a.Target(), b.Target())
}
