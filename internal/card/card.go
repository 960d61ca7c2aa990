package card

import "fmt"

// Suit is one of the four French suits
type Suit uint8

const (
	Diamond Suit = iota
	Club
	Heart
	Spade
)

// Suits lists the suits in deck enumeration order
var Suits = [...]Suit{Diamond, Club, Heart, Spade}

// Color is the colour of a suit
type Color uint8

const (
	Red Color = iota
	Black
)

// Color returns Red for diamonds and hearts, Black for clubs and spades
func (s Suit) Color() Color {
	switch s {
	case Diamond, Heart:
		return Red
	default:
		return Black
	}
}

// Symbol returns the suit glyph
func (s Suit) Symbol() string {
	switch s {
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

func (s Suit) String() string {
	switch s {
	case Diamond:
		return "diamond"
	case Club:
		return "club"
	case Heart:
		return "heart"
	case Spade:
		return "spade"
	default:
		return fmt.Sprintf("suit(%d)", uint8(s))
	}
}

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Rank is the card value, Ace (1) through King (13)
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists the ranks in deck enumeration order
var Ranks = [...]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Label returns the single character label of the rank
func (r Rank) Label() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r >= Two && r <= Nine {
		return string(rune('0' + r))
	}
	return "?"
}

// Card is a playing card. Only FaceUp changes during a game.
type Card struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

// Color returns the colour of the card's suit
func (c Card) Color() Color {
	return c.Suit.Color()
}

// IsSameColor reports whether both cards are red or both are black
func (c Card) IsSameColor(other Card) bool {
	return c.Suit.Color() == other.Suit.Color()
}

// IsOneBelow reports whether c ranks exactly one below other
func (c Card) IsOneBelow(other Card) bool {
	return int(other.Rank)-int(c.Rank) == 1
}

// String returns the face label such as "A♥" regardless of FaceUp
func (c Card) String() string {
	return c.Rank.Label() + c.Suit.Symbol()
}
