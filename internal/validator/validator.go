package validator

import (
	"fmt"

	"github.com/arcanaland/patience/internal/card"
	"github.com/arcanaland/patience/internal/deck"
	"github.com/arcanaland/patience/internal/pile"
	"github.com/arcanaland/patience/internal/table"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Table   *table.Table
	Results ValidationResults
}

func New(t *table.Table) *Validator {
	return &Validator{
		Table:   t,
		Results: ValidationResults{},
	}
}

// Validate checks the table against the rules every reachable game state obeys
func (v *Validator) Validate() ValidationResults {
	v.Results = ValidationResults{}

	v.validateConservation()
	v.validateStock()
	v.validateWaste()
	v.validateFoundations()
	v.validateTableaux()
	v.validateCursor()

	return v.Results
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateConservation checks that each of the 52 cards is on the table exactly once
func (v *Validator) validateConservation() {
	type key struct {
		suit card.Suit
		rank card.Rank
	}
	counts := make(map[key]int, deck.Size)
	for id := pile.Stock; id <= pile.Hand; id++ {
		for _, c := range v.Table.Pile(id).Cards() {
			counts[key{c.Suit, c.Rank}]++
		}
	}

	for _, c := range deck.Ordered() {
		k := key{c.Suit, c.Rank}
		switch n := counts[k]; {
		case n == 0:
			v.errorf("missing card: %s", c)
		case n > 1:
			v.errorf("card %s appears %d times", c, n)
		}
		delete(counts, k)
	}
	for k, n := range counts {
		v.errorf("unknown card %s (%d)", card.Card{Suit: k.suit, Rank: k.rank}, n)
	}
}

// validateStock checks that the stock is entirely face-down
func (v *Validator) validateStock() {
	for i, c := range v.Table.Stock().Cards() {
		if c.FaceUp {
			v.errorf("stock card %d (%s) is face-up", i, c)
		}
	}
}

// validateWaste checks that every waste card has been turned
func (v *Validator) validateWaste() {
	for i, c := range v.Table.Waste().Cards() {
		if !c.FaceUp {
			v.errorf("waste card %d (%s) is face-down", i, c)
		}
	}
}

// validateFoundations checks each foundation builds Ace upwards in one suit
func (v *Validator) validateFoundations() {
	for _, id := range pile.Foundations {
		cards := v.Table.Pile(id).Cards()
		for i, c := range cards {
			if !c.FaceUp {
				v.errorf("%s card %d (%s) is face-down", id, i, c)
			}
			if c.Rank != card.Rank(i+1) {
				v.errorf("%s card %d is %s, expected rank %s", id, i, c, card.Rank(i+1).Label())
			}
			if c.Suit != cards[0].Suit {
				v.errorf("%s mixes suits: %s on %s", id, c, cards[0])
			}
		}
	}
}

// validateTableaux checks face-down cards sit below face-up ones and that
// the face-up run descends in alternating colours
func (v *Validator) validateTableaux() {
	for _, id := range pile.Tableaux {
		cards := v.Table.Pile(id).Cards()
		for i := 1; i < len(cards); i++ {
			below, above := cards[i-1], cards[i]
			if below.FaceUp && !above.FaceUp {
				v.errorf("%s card %d (%s) is face-down above a face-up card", id, i, above)
				continue
			}
			if below.FaceUp && above.FaceUp {
				if above.IsSameColor(below) || !above.IsOneBelow(below) {
					v.errorf("%s: %s cannot sit on %s", id, above, below)
				}
			}
		}
		if len(cards) > 0 && !cards[len(cards)-1].FaceUp {
			v.warnf("%s top card is face-down", id)
		}
	}
}

// validateCursor checks the source cursor rests on an active card
func (v *Validator) validateCursor() {
	if v.Table.CardsInHand() {
		return
	}
	src := v.Table.Source()
	p := v.Table.Pile(src.Pile)
	if p == nil || src.Pile == pile.Hand {
		v.errorf("cursor on unknown pile %s", src.Pile)
		return
	}
	if !p.IsActive(src.Index) {
		v.warnf("cursor %s is not on an active card", src)
	}
}
