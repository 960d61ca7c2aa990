package table

import "errors"

// Errors returned by Table moves; the table is unchanged when one is returned.
var (
	ErrEmptyHand       = errors.New("no cards in hand")
	ErrHandNotEmpty    = errors.New("hand already holds cards")
	ErrIllegalDrop     = errors.New("target cannot accept the hand")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyPile       = errors.New("pile is empty")
	ErrFaceDownCard    = errors.New("selected card is face-down")
	ErrUnknownPile     = errors.New("unknown pile")
	ErrInactiveCard    = errors.New("card is not active")
)
