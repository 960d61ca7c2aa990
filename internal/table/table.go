// Package table holds the state of one Klondike game and every move that
// changes it. A Table is not safe for concurrent use.
package table

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/arcanaland/patience/internal/deck"
	"github.com/arcanaland/patience/internal/pile"
)

// DefaultDrawCount is how many cards one deal turns from stock to waste
const DefaultDrawCount = 3

// Source is the card under the cursor while the hand is empty
type Source struct {
	Pile  pile.ID
	Index int
}

// StockSource is where the cursor falls back to
func StockSource() Source {
	return Source{Pile: pile.Stock, Index: 0}
}

func (s Source) String() string {
	return fmt.Sprintf("%s[%d]", s.Pile, s.Index)
}

// Option configures a Table in New
type Option func(*Table)

// WithDrawCount changes how many cards a deal moves. Values below 1 are ignored.
func WithDrawCount(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.drawCount = n
		}
	}
}

// WithLogger sends move logs to logger instead of discarding them
func WithLogger(logger *slog.Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// Table owns every pile of a game plus the cursor
type Table struct {
	piles     [pile.Count]*pile.Pile
	source    Source
	target    pile.ID
	seed      uint64
	drawCount int
	logger    *slog.Logger
}

// New shuffles a deck with seed and deals a fresh game
func New(seed uint64, opts ...Option) *Table {
	t := &Table{
		seed:      seed,
		drawCount: DefaultDrawCount,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	cards := deck.New(seed)
	for _, id := range pile.Foundations {
		t.piles[id] = pile.New(id)
	}
	for n, id := range pile.Tableaux {
		start := len(cards) - (n + 1)
		p := pile.New(id, cards[start:]...)
		p.FlipTopCard()
		t.piles[id] = p
		cards = cards[:start]
	}
	t.piles[pile.Stock] = pile.New(pile.Stock, cards...)
	t.piles[pile.Waste] = pile.New(pile.Waste)
	t.piles[pile.Hand] = pile.New(pile.Hand)

	index, _ := t.piles[pile.Stock].NextActiveIndex(pile.NoIndex)
	t.source = Source{Pile: pile.Stock, Index: index}
	t.target = pile.Stock

	t.logger.Debug("dealt table", "seed", seed, "stock", t.piles[pile.Stock].Len())
	return t
}

func (t *Table) Seed() uint64      { return t.seed }
func (t *Table) DrawCount() int    { return t.drawCount }
func (t *Table) Source() Source    { return t.source }
func (t *Table) Target() pile.ID   { return t.target }
func (t *Table) Hand() *pile.Pile  { return t.piles[pile.Hand] }
func (t *Table) Stock() *pile.Pile { return t.piles[pile.Stock] }
func (t *Table) Waste() *pile.Pile { return t.piles[pile.Waste] }

// Pile returns the pile with the given id, or nil for an unknown id.
// The pile is the table's own; mutating it bypasses every rule.
func (t *Table) Pile(id pile.ID) *pile.Pile {
	if !id.Valid() {
		return nil
	}
	return t.piles[id]
}

// CardsInHand reports whether a move is in progress
func (t *Table) CardsInHand() bool {
	return !t.piles[pile.Hand].Empty()
}

// SetSource moves the cursor to an active card
func (t *Table) SetSource(src Source) error {
	if !playable(src.Pile) {
		return fmt.Errorf("%w: %s", ErrUnknownPile, src.Pile)
	}
	if !t.piles[src.Pile].IsActive(src.Index) {
		return fmt.Errorf("%w: %s", ErrInactiveCard, src)
	}
	t.source = src
	return nil
}

// GoNext advances the source cursor, or the target while carrying cards
func (t *Table) GoNext() {
	if t.CardsInHand() {
		t.target = t.nextPlayLocation()
		return
	}
	if src, ok := t.nextActiveCard(); ok {
		t.source = src
		return
	}
	t.source = StockSource()
}

// GoPrevious is GoNext in the other direction
func (t *Table) GoPrevious() {
	if t.CardsInHand() {
		t.target = t.previousPlayLocation()
		return
	}
	if src, ok := t.previousActiveCard(); ok {
		t.source = src
		return
	}
	t.source = StockSource()
}

func (t *Table) nextActiveCard() (Source, bool) {
	id := t.source.Pile
	after := t.source.Index
	// one extra step covers the part of the starting pile before the cursor
	for range len(pile.Ring) + 1 {
		if !playable(id) {
			return Source{}, false
		}
		if i, ok := t.piles[id].NextActiveIndex(after); ok {
			return Source{Pile: id, Index: i}, true
		}
		id = id.Next()
		after = pile.NoIndex
	}
	return Source{}, false
}

func (t *Table) previousActiveCard() (Source, bool) {
	id := t.source.Pile
	before := t.source.Index
	for range len(pile.Ring) + 1 {
		if !playable(id) {
			return Source{}, false
		}
		if i, ok := t.piles[id].PreviousActiveIndex(before); ok {
			return Source{Pile: id, Index: i}, true
		}
		id = id.Previous()
		before = pile.NoIndex
	}
	return Source{}, false
}

// nextPlayLocation stops on the first pile that accepts the hand, or when the
// walk comes back round to the pile the hand was taken from.
func (t *Table) nextPlayLocation() pile.ID {
	hand := t.piles[pile.Hand]
	target := t.target.Next()
	for range len(pile.Ring) {
		if t.piles[target].CanPlay(hand) || target == t.source.Pile {
			break
		}
		target = target.Next()
	}
	return target
}

func (t *Table) previousPlayLocation() pile.ID {
	hand := t.piles[pile.Hand]
	target := t.target.Previous()
	for range len(pile.Ring) {
		if t.piles[target].CanPlay(hand) || target == t.source.Pile {
			break
		}
		target = target.Previous()
	}
	return target
}

// DealFromStock turns up to DrawCount cards onto the waste. An empty stock
// takes the whole waste back face-down so it deals out in the same order.
func (t *Table) DealFromStock() {
	stock := t.piles[pile.Stock]
	waste := t.piles[pile.Waste]

	n := min(t.drawCount, stock.Len())
	if n == 0 {
		stock.Push(waste.TakeAll()...)
		stock.SetFaceUp(false)
		stock.Reverse()
		t.logger.Debug("recycled waste", "cards", stock.Len())
	} else {
		// card by card, so the waste reversed is the stock again
		for range n {
			c, _ := stock.PopTop()
			c.FaceUp = true
			waste.Push(c)
		}
		t.logger.Debug("dealt from stock", "cards", n, "stock", stock.Len(), "waste", waste.Len())
	}

	switch {
	case t.source.Pile == pile.Stock:
		t.source.Index = stock.TopIndex()
	case t.source.Pile == pile.Waste && waste.Empty():
		t.source = Source{Pile: pile.Stock, Index: stock.TopIndex()}
	case t.source.Pile == pile.Waste:
		t.source.Index = waste.TopIndex()
	}
}

// TakeTopCardFromStack picks up the top card of id, face-up
func (t *Table) TakeTopCardFromStack(id pile.ID) error {
	if !playable(id) {
		return fmt.Errorf("%w: %s", ErrUnknownPile, id)
	}
	if t.CardsInHand() {
		return ErrHandNotEmpty
	}
	p := t.piles[id]
	c, ok := p.PopTop()
	if !ok {
		return fmt.Errorf("%w: %s", ErrEmptyPile, id)
	}
	c.FaceUp = true
	t.piles[pile.Hand].Push(c)
	t.pickedUp(id, p.Len())
	return nil
}

// TakeSelectedCardsFromStack picks up the run starting at index.
// An index equal to the pile length selects nothing and changes nothing.
func (t *Table) TakeSelectedCardsFromStack(id pile.ID, index int) error {
	if !playable(id) {
		return fmt.Errorf("%w: %s", ErrUnknownPile, id)
	}
	if t.CardsInHand() {
		return ErrHandNotEmpty
	}
	p := t.piles[id]
	if index < 0 || index > p.Len() {
		return fmt.Errorf("%w: %d in %s of %d cards", ErrIndexOutOfRange, index, id, p.Len())
	}
	if index == p.Len() {
		return nil
	}
	if c, _ := p.Card(index); !c.FaceUp {
		return fmt.Errorf("%w: %s", ErrFaceDownCard, Source{Pile: id, Index: index})
	}

	run, err := p.SplitOff(index)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIndexOutOfRange, err)
	}
	t.piles[pile.Hand].Push(run...)
	t.pickedUp(id, index)
	return nil
}

func (t *Table) pickedUp(id pile.ID, index int) {
	t.source = Source{Pile: id, Index: index}
	t.target = id
	t.logger.Debug("picked up", "from", t.source, "cards", t.piles[pile.Hand].Len())
}

// PutHandOnTarget drops the hand on the target pile if the rules allow it.
// On success the cursor moves to the first card just placed.
func (t *Table) PutHandOnTarget() error {
	hand := t.piles[pile.Hand]
	if hand.Empty() {
		return ErrEmptyHand
	}
	if !playable(t.target) {
		return fmt.Errorf("%w: %s", ErrUnknownPile, t.target)
	}
	target := t.piles[t.target]
	if !target.CanPlay(hand) {
		bottom, _ := hand.BottomCard()
		return fmt.Errorf("%w: %s onto %s", ErrIllegalDrop, bottom, t.target)
	}

	index := target.Len()
	target.Push(hand.TakeAll()...)
	// the stock stays face-down
	if playable(t.source.Pile) && t.source.Pile != pile.Stock {
		t.piles[t.source.Pile].ExposeTopCard()
	}
	t.logger.Debug("dropped hand", "from", t.source.Pile, "onto", t.target, "cards", target.Len()-index)
	t.source = Source{Pile: t.target, Index: index}
	return nil
}

// CancelMove puts the hand back where it was picked up
func (t *Table) CancelMove() error {
	hand := t.piles[pile.Hand]
	if hand.Empty() {
		return ErrEmptyHand
	}
	id := t.source.Pile
	if !playable(id) {
		return fmt.Errorf("%w: %s", ErrUnknownPile, id)
	}
	p := t.piles[id]
	index := p.Len()
	cards := hand.TakeAll()
	if id.Kind() == pile.KindStock {
		for i := range cards {
			cards[i].FaceUp = false
		}
	}
	p.Push(cards...)
	t.source = Source{Pile: id, Index: index}
	if id.Kind() != pile.KindTableau {
		t.source.Index = p.TopIndex()
	}
	t.target = id
	t.logger.Debug("cancelled move", "to", id, "cards", len(cards))
	return nil
}

// playable reports whether id names one of the thirteen ring piles
func playable(id pile.ID) bool {
	return id.Valid() && id != pile.Hand
}
