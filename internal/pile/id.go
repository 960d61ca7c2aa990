package pile

import (
	"fmt"
	"strings"
)

// ID identifies one of the fourteen piles on a table
type ID int

const (
	Stock ID = iota
	Waste
	Foundation1
	Foundation2
	Foundation3
	Foundation4
	Tableau1
	Tableau2
	Tableau3
	Tableau4
	Tableau5
	Tableau6
	Tableau7
	Hand

	// Count is the number of pile identities, Hand included
	Count = int(Hand) + 1
)

// Ring is the cyclic order the cursor walks through. Hand is not part of it.
var Ring = [...]ID{
	Stock, Waste,
	Foundation1, Foundation2, Foundation3, Foundation4,
	Tableau1, Tableau2, Tableau3, Tableau4, Tableau5, Tableau6, Tableau7,
}

var Foundations = [4]ID{Foundation1, Foundation2, Foundation3, Foundation4}

var Tableaux = [7]ID{Tableau1, Tableau2, Tableau3, Tableau4, Tableau5, Tableau6, Tableau7}

var names = [Count]string{
	"stock", "waste",
	"foundation1", "foundation2", "foundation3", "foundation4",
	"tableau1", "tableau2", "tableau3", "tableau4", "tableau5", "tableau6", "tableau7",
	"hand",
}

// Valid reports whether id is one of the fourteen known piles
func (id ID) Valid() bool {
	return id >= Stock && id <= Hand
}

// Next returns the successor of id in the ring. Hand maps to itself.
func (id ID) Next() ID {
	if id < Stock || id >= Hand {
		return id
	}
	return Ring[(int(id)+1)%len(Ring)]
}

// Previous returns the predecessor of id in the ring. Hand maps to itself.
func (id ID) Previous() ID {
	if id < Stock || id >= Hand {
		return id
	}
	return Ring[(int(id)+len(Ring)-1)%len(Ring)]
}

// Kind returns the rule set that applies to the pile
func (id ID) Kind() Kind {
	switch {
	case id == Stock:
		return KindStock
	case id == Waste:
		return KindWaste
	case id >= Foundation1 && id <= Foundation4:
		return KindFoundation
	case id >= Tableau1 && id <= Tableau7:
		return KindTableau
	default:
		return KindHand
	}
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("pile(%d)", int(id))
	}
	return names[id]
}

// ParseID accepts the names produced by String, case-insensitively
func ParseID(s string) (ID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == s {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown pile: %q", s)
}

// Kind governs which cards of a pile are active and what it accepts
type Kind int

const (
	KindStock Kind = iota
	KindWaste
	KindFoundation
	KindTableau
	KindHand
)

func (k Kind) String() string {
	switch k {
	case KindStock:
		return "stock"
	case KindWaste:
		return "waste"
	case KindFoundation:
		return "foundation"
	case KindTableau:
		return "tableau"
	case KindHand:
		return "hand"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
