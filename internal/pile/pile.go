package pile

import (
	"fmt"

	"github.com/arcanaland/patience/internal/card"
)

// NoIndex stands for "no bound" when searching for active cards
const NoIndex = -1

// Pile is an ordered run of cards. Index 0 is the bottom card.
type Pile struct {
	id    ID
	kind  Kind
	cards []card.Card
}

// New creates an empty pile whose kind follows from id
func New(id ID, cards ...card.Card) *Pile {
	p := &Pile{id: id, kind: id.Kind()}
	p.cards = append(p.cards, cards...)
	return p
}

func (p *Pile) ID() ID     { return p.id }
func (p *Pile) Kind() Kind { return p.kind }
func (p *Pile) Len() int   { return len(p.cards) }
func (p *Pile) Empty() bool {
	return len(p.cards) == 0
}

// Cards returns a copy of the pile, bottom first
func (p *Pile) Cards() []card.Card {
	out := make([]card.Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// Card returns the card at index i
func (p *Pile) Card(i int) (card.Card, bool) {
	if i < 0 || i >= len(p.cards) {
		return card.Card{}, false
	}
	return p.cards[i], true
}

// TopIndex returns the index of the top card, 0 for an empty pile
func (p *Pile) TopIndex() int {
	if len(p.cards) == 0 {
		return 0
	}
	return len(p.cards) - 1
}

func (p *Pile) TopCard() (card.Card, bool) {
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

func (p *Pile) BottomCard() (card.Card, bool) {
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	return p.cards[0], true
}

// ExposeTopCard turns the top card face-up
func (p *Pile) ExposeTopCard() {
	if len(p.cards) > 0 {
		p.cards[len(p.cards)-1].FaceUp = true
	}
}

// FlipTopCard toggles the face of the top card
func (p *Pile) FlipTopCard() {
	if len(p.cards) > 0 {
		top := &p.cards[len(p.cards)-1]
		top.FaceUp = !top.FaceUp
	}
}

// NextActiveIndex returns the first active index after the given one.
// Pass NoIndex to search from the bottom of the pile.
func (p *Pile) NextActiveIndex(after int) (int, bool) {
	if p.kind == KindHand {
		return 0, false
	}
	if len(p.cards) == 0 {
		// dealing from an empty stock recycles the waste
		return 0, p.kind == KindStock && after == NoIndex
	}
	top := len(p.cards) - 1
	switch p.kind {
	case KindStock, KindWaste, KindFoundation:
		if after == NoIndex {
			return top, true
		}
		return 0, false
	}

	start := 0
	if after != NoIndex {
		start = after + 1
	}
	if start < 0 {
		start = 0
	}
	for i := start; i <= top; i++ {
		if p.cards[i].FaceUp {
			return i, true
		}
	}
	return 0, false
}

// PreviousActiveIndex returns the closest active index below the given one.
// Pass NoIndex to search from the top of the pile.
func (p *Pile) PreviousActiveIndex(before int) (int, bool) {
	if p.kind == KindHand {
		return 0, false
	}
	if len(p.cards) == 0 {
		return 0, p.kind == KindStock && before == NoIndex
	}
	top := len(p.cards) - 1
	switch p.kind {
	case KindStock, KindWaste, KindFoundation:
		if before == NoIndex {
			return top, true
		}
		return 0, false
	}

	start := top
	if before != NoIndex {
		if before <= 0 {
			return 0, false
		}
		start = min(before-1, top)
	}
	for i := start; i >= 0; i-- {
		if p.cards[i].FaceUp {
			return i, true
		}
	}
	return 0, false
}

// IsActive reports whether the cursor may rest on index i
func (p *Pile) IsActive(i int) bool {
	switch p.kind {
	case KindHand:
		return false
	case KindStock:
		return i == p.TopIndex()
	case KindWaste, KindFoundation:
		return len(p.cards) > 0 && i == len(p.cards)-1
	default:
		c, ok := p.Card(i)
		return ok && c.FaceUp
	}
}

// CanPlay reports whether the cards held in hand may be dropped here
func (p *Pile) CanPlay(hand *Pile) bool {
	switch p.kind {
	case KindFoundation:
		return p.foundationCanAccept(hand)
	case KindTableau:
		return p.tableauCanAccept(hand)
	default:
		return false
	}
}

func (p *Pile) foundationCanAccept(hand *Pile) bool {
	if hand.Len() != 1 {
		return false
	}
	c, _ := hand.TopCard()
	top, ok := p.TopCard()
	if !ok {
		return c.Rank == card.Ace
	}
	return c.Suit == top.Suit && top.IsOneBelow(c)
}

func (p *Pile) tableauCanAccept(hand *Pile) bool {
	c, ok := hand.BottomCard()
	if !ok {
		return false
	}
	top, ok := p.TopCard()
	if !ok {
		return c.Rank == card.King
	}
	return !top.IsSameColor(c) && c.IsOneBelow(top)
}

// Push appends cards on top of the pile
func (p *Pile) Push(cards ...card.Card) {
	p.cards = append(p.cards, cards...)
}

// PopTop removes and returns the top card
func (p *Pile) PopTop() (card.Card, bool) {
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	c := p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]
	return c, true
}

// SplitOff removes the run [index, end) and returns it
func (p *Pile) SplitOff(index int) ([]card.Card, error) {
	if index < 0 || index > len(p.cards) {
		return nil, fmt.Errorf("index %d outside %s of %d cards", index, p.id, len(p.cards))
	}
	run := make([]card.Card, len(p.cards)-index)
	copy(run, p.cards[index:])
	p.cards = p.cards[:index]
	return run, nil
}

// TakeAll empties the pile and returns its cards
func (p *Pile) TakeAll() []card.Card {
	cards := p.cards
	p.cards = nil
	return cards
}

// SetFaceUp sets the face of every card in the pile
func (p *Pile) SetFaceUp(up bool) {
	for i := range p.cards {
		p.cards[i].FaceUp = up
	}
}

// Reverse reverses the order of the pile in place
func (p *Pile) Reverse() {
	for i, j := 0, len(p.cards)-1; i < j; i, j = i+1, j-1 {
		p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
	}
}

func (p *Pile) String() string {
	return fmt.Sprintf("%s%v", p.id, p.cards)
}
