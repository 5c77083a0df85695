package deck

import (
	"fmt"

	"github.com/luca-patrignani/card24/domain/card"
)

// Fixed deals a predetermined sequence of raw cards, wrapping around when the
// sequence is exhausted.
type Fixed struct {
	Deals [][card.HandSize]int
	next  int
}

// Deal returns the next predetermined deal.
func (f *Fixed) Deal() ([card.HandSize]card.Card, error) {
	var hand [card.HandSize]card.Card
	if len(f.Deals) == 0 {
		return hand, fmt.Errorf("no deals configured")
	}
	raw := f.Deals[f.next%len(f.Deals)]
	f.next++
	for i, r := range raw {
		c, err := card.IntToCard(r)
		if err != nil {
			return hand, err
		}
		hand[i] = c
	}
	return hand, nil
}
