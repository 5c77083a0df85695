package card

import (
	"fmt"
	"slices"
)

// HandSize is the number of cards in play for one deal.
const HandSize = 4

// Hand holds the ranks of the cards currently in play. Order is incidental,
// only the multiset of ranks matters when checking a player's answer.
type Hand [HandSize]int

// HandFromCards extracts the ranks of a dealt set of cards.
func HandFromCards(cards [HandSize]Card) Hand {
	var h Hand
	for i, c := range cards {
		h[i] = int(c.Rank())
	}
	return h
}

// HandFromRaw derives a Hand from four raw card numbers (1-52).
func HandFromRaw(raw [HandSize]int) (Hand, error) {
	var h Hand
	for i, r := range raw {
		if r < 1 || r > DeckSize {
			return Hand{}, fmt.Errorf("%w: raw value %d at position %d", ErrInvalidCard, r, i)
		}
		h[i] = RankOf(r)
	}
	return h, nil
}

// Valid reports whether every rank lies in [1,13].
func (h Hand) Valid() bool {
	for _, r := range h {
		if r < Ace || r > King {
			return false
		}
	}
	return true
}

// Sorted returns the ranks in ascending order.
func (h Hand) Sorted() []int {
	s := slices.Clone(h[:])
	slices.Sort(s)
	return s
}
