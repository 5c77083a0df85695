package deck

import (
	"crypto/cipher"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"

	"github.com/luca-patrignani/card24/domain/card"
)

// Dealer is a source of four cards for a new round.
type Dealer interface {
	Deal() ([card.HandSize]card.Card, error)
}

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is a standard 52-card deck. Cards are held as raw numbers (1-52) and
// drawn from the top after a shuffle.
type Deck struct {
	DeckSize int
	// Stream provides the shuffle randomness. A nil Stream uses the
	// Ed25519 suite's random stream.
	Stream        cipher.Stream
	cards         []int
	lastDrawnCard int
}

// NewDeck returns a full, unshuffled deck.
func NewDeck() *Deck {
	return &Deck{DeckSize: card.DeckSize}
}

// DrawCard returns the next raw card from the top of the deck.
func (d *Deck) DrawCard() (int, error) {
	if d.lastDrawnCard >= len(d.cards) {
		return 0, fmt.Errorf("deck exhausted after %d cards", d.lastDrawnCard)
	}
	c := d.cards[d.lastDrawnCard]
	d.lastDrawnCard++
	return c, nil
}

// Remaining reports how many cards can still be drawn.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.lastDrawnCard
}

// Deal shuffles the whole deck and draws four distinct cards.
func (d *Deck) Deal() ([card.HandSize]card.Card, error) {
	var hand [card.HandSize]card.Card
	if err := d.Shuffle(); err != nil {
		return hand, err
	}
	for i := range hand {
		raw, err := d.DrawCard()
		if err != nil {
			return hand, err
		}
		c, err := card.IntToCard(raw)
		if err != nil {
			return hand, err
		}
		hand[i] = c
	}
	return hand, nil
}
