package deck

import (
	"crypto/cipher"
	"fmt"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle refills the deck with cards 1..DeckSize in a uniformly random order.
func (d *Deck) Shuffle() error {
	if d.DeckSize <= 0 {
		return fmt.Errorf("invalid deck size %d", d.DeckSize)
	}
	stream := d.Stream
	if stream == nil {
		stream = suite.RandomStream()
	}
	d.cards = permutation(d.DeckSize, stream)
	d.lastDrawnCard = 0
	return nil
}

// Helper function to generate a random permutation of 1..permSize
func permutation(permSize int, stream cipher.Stream) []int {
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i + 1
	}
	for i := permSize - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
