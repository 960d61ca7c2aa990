package pile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/patience/internal/card"
)

func up(s card.Suit, r card.Rank) card.Card {
	return card.Card{Suit: s, Rank: r, FaceUp: true}
}

func down(s card.Suit, r card.Rank) card.Card {
	return card.Card{Suit: s, Rank: r}
}

func TestRingOrder(t *testing.T) {
	assert.Equal(t, Waste, Stock.Next())
	assert.Equal(t, Tableau1, Foundation4.Next())
	assert.Equal(t, Stock, Tableau7.Next())
	assert.Equal(t, Tableau7, Stock.Previous())
	assert.Equal(t, Foundation4, Tableau1.Previous())
	assert.Equal(t, Hand, Hand.Next())
	assert.Equal(t, Hand, Hand.Previous())

	id := Stock
	for range Ring {
		id = id.Next()
	}
	assert.Equal(t, Stock, id, "a full lap returns to the start")
}

func TestKinds(t *testing.T) {
	assert.Equal(t, KindStock, Stock.Kind())
	assert.Equal(t, KindWaste, Waste.Kind())
	for _, id := range Foundations {
		assert.Equal(t, KindFoundation, id.Kind())
	}
	for _, id := range Tableaux {
		assert.Equal(t, KindTableau, id.Kind())
	}
	assert.Equal(t, KindHand, Hand.Kind())
}

func TestParseID(t *testing.T) {
	id, err := ParseID("Tableau3")
	require.NoError(t, err)
	assert.Equal(t, Tableau3, id)

	_, err = ParseID("tableau8")
	assert.Error(t, err)
}

func TestTopAndBottom(t *testing.T) {
	p := New(Tableau1)
	_, ok := p.TopCard()
	assert.False(t, ok)
	_, ok = p.BottomCard()
	assert.False(t, ok)

	p.Push(down(card.Club, card.Two), up(card.Heart, card.Nine))
	top, ok := p.TopCard()
	require.True(t, ok)
	assert.Equal(t, card.Nine, top.Rank)
	bottom, ok := p.BottomCard()
	require.True(t, ok)
	assert.Equal(t, card.Two, bottom.Rank)
}

func TestExposeAndFlip(t *testing.T) {
	p := New(Tableau2, down(card.Club, card.Two))
	p.ExposeTopCard()
	top, _ := p.TopCard()
	assert.True(t, top.FaceUp)
	p.ExposeTopCard()
	top, _ = p.TopCard()
	assert.True(t, top.FaceUp, "expose forces rather than toggles")

	p.FlipTopCard()
	top, _ = p.TopCard()
	assert.False(t, top.FaceUp)

	empty := New(Tableau3)
	empty.ExposeTopCard()
	empty.FlipTopCard()
	assert.True(t, empty.Empty())
}

func TestNextActiveIndexEmpty(t *testing.T) {
	i, ok := New(Stock).NextActiveIndex(NoIndex)
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	for _, id := range []ID{Waste, Foundation1, Tableau1, Hand} {
		_, ok := New(id).NextActiveIndex(NoIndex)
		assert.False(t, ok, id.String())
	}
}

func TestNextActiveIndexSingleSlotPiles(t *testing.T) {
	for _, id := range []ID{Stock, Waste, Foundation2} {
		p := New(id, down(card.Club, card.Two), down(card.Club, card.Three), down(card.Club, card.Four))
		i, ok := p.NextActiveIndex(NoIndex)
		require.True(t, ok, id.String())
		assert.Equal(t, 2, i)

		_, ok = p.NextActiveIndex(2)
		assert.False(t, ok, id.String())
		_, ok = p.NextActiveIndex(0)
		assert.False(t, ok, id.String())
	}
}

func TestNextActiveIndexTableau(t *testing.T) {
	p := New(Tableau4,
		down(card.Club, card.Two),
		down(card.Club, card.Three),
		up(card.Heart, card.Nine),
		up(card.Spade, card.Eight),
	)
	i, ok := p.NextActiveIndex(NoIndex)
	require.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = p.NextActiveIndex(2)
	require.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = p.NextActiveIndex(3)
	assert.False(t, ok)
}

func TestPreviousActiveIndexTableau(t *testing.T) {
	p := New(Tableau4,
		down(card.Club, card.Two),
		up(card.Heart, card.Nine),
		up(card.Spade, card.Eight),
	)
	i, ok := p.PreviousActiveIndex(NoIndex)
	require.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = p.PreviousActiveIndex(2)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = p.PreviousActiveIndex(1)
	assert.False(t, ok, "index 0 is face-down")
	_, ok = p.PreviousActiveIndex(0)
	assert.False(t, ok)
}

func TestPreviousActiveIndexSingleSlotPiles(t *testing.T) {
	p := New(Waste, up(card.Club, card.Two), up(card.Club, card.Three))
	i, ok := p.PreviousActiveIndex(NoIndex)
	require.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = p.PreviousActiveIndex(1)
	assert.False(t, ok)

	i, ok = New(Stock).PreviousActiveIndex(NoIndex)
	require.True(t, ok)
	assert.Equal(t, 0, i)
	_, ok = New(Stock).PreviousActiveIndex(0)
	assert.False(t, ok)
	_, ok = New(Foundation1).PreviousActiveIndex(NoIndex)
	assert.False(t, ok)
}

func TestFoundationCanPlay(t *testing.T) {
	f := New(Foundation1)
	assert.True(t, f.CanPlay(New(Hand, up(card.Heart, card.Ace))))
	assert.False(t, f.CanPlay(New(Hand, up(card.Heart, card.Two))))
	assert.False(t, f.CanPlay(New(Hand)))

	f.Push(up(card.Heart, card.Ace))
	assert.True(t, f.CanPlay(New(Hand, up(card.Heart, card.Two))))
	assert.False(t, f.CanPlay(New(Hand, up(card.Diamond, card.Two))), "suit must match")
	assert.False(t, f.CanPlay(New(Hand, up(card.Heart, card.Three))), "no gaps")
	assert.False(t, f.CanPlay(New(Hand, up(card.Heart, card.Two), up(card.Club, card.Ace))),
		"only single cards go to a foundation")
}

func TestTableauCanPlay(t *testing.T) {
	tab := New(Tableau1)
	assert.True(t, tab.CanPlay(New(Hand, up(card.Spade, card.King), up(card.Heart, card.Queen))))
	assert.False(t, tab.CanPlay(New(Hand, up(card.Spade, card.Queen))))
	assert.False(t, tab.CanPlay(New(Hand)))

	tab.Push(down(card.Club, card.Four), up(card.Club, card.Nine))
	assert.True(t, tab.CanPlay(New(Hand, up(card.Heart, card.Eight))))
	assert.True(t, tab.CanPlay(New(Hand, up(card.Diamond, card.Eight), up(card.Spade, card.Seven))),
		"the bottom of the run decides")
	assert.False(t, tab.CanPlay(New(Hand, up(card.Spade, card.Eight))), "same colour")
	assert.False(t, tab.CanPlay(New(Hand, up(card.Heart, card.Seven))), "rank gap")
	assert.False(t, tab.CanPlay(New(Hand, up(card.Heart, card.Ten))), "ascending")
}

func TestOtherKindsNeverPlayable(t *testing.T) {
	hand := New(Hand, up(card.Heart, card.Ace))
	for _, id := range []ID{Stock, Waste, Hand} {
		assert.False(t, New(id).CanPlay(hand), id.String())
	}
}

func TestSplitOff(t *testing.T) {
	p := New(Tableau5, down(card.Club, card.Two), up(card.Heart, card.Nine), up(card.Spade, card.Eight))
	run, err := p.SplitOff(1)
	require.NoError(t, err)
	assert.Len(t, run, 2)
	assert.Equal(t, 1, p.Len())

	run, err = p.SplitOff(1)
	require.NoError(t, err)
	assert.Empty(t, run)

	_, err = p.SplitOff(5)
	assert.Error(t, err)
	assert.Equal(t, 1, p.Len())
}

func TestReverseAndFaces(t *testing.T) {
	p := New(Waste, up(card.Club, card.Two), up(card.Club, card.Three), up(card.Club, card.Four))
	p.Reverse()
	p.SetFaceUp(false)
	cards := p.Cards()
	assert.Equal(t, []card.Card{
		down(card.Club, card.Four),
		down(card.Club, card.Three),
		down(card.Club, card.Two),
	}, cards)
}

func TestIsActive(t *testing.T) {
	assert.True(t, New(Stock).IsActive(0))
	assert.False(t, New(Waste).IsActive(0))

	tab := New(Tableau2, down(card.Club, card.Two), up(card.Heart, card.Nine))
	assert.False(t, tab.IsActive(0))
	assert.True(t, tab.IsActive(1))
	assert.False(t, tab.IsActive(2))
}

func TestEmptyStockIsSteppedOver(t *testing.T) {
	stock := New(Stock)
	_, ok := stock.NextActiveIndex(0)
	assert.False(t, ok, "leaving the empty stock must move on")
	_, ok = stock.PreviousActiveIndex(0)
	assert.False(t, ok)
}
