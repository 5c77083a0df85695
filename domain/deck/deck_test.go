package deck

import (
	"testing"

	"github.com/luca-patrignani/card24/domain/card"
)

func TestShuffle(t *testing.T) {
	d := NewDeck()
	if err := d.Shuffle(); err != nil {
		t.Fatal(err)
	}
	if d.Remaining() != card.DeckSize {
		t.Fatalf("expected %d cards, got %d", card.DeckSize, d.Remaining())
	}
	seen := make(map[int]bool)
	for d.Remaining() > 0 {
		c, err := d.DrawCard()
		if err != nil {
			t.Fatal(err)
		}
		if c < 1 || c > card.DeckSize {
			t.Fatalf("card %d out of range", c)
		}
		if seen[c] {
			t.Fatalf("card %d drawn twice", c)
		}
		seen[c] = true
	}
	if len(seen) != card.DeckSize {
		t.Fatalf("expected %d distinct cards, got %d", card.DeckSize, len(seen))
	}
	if _, err := d.DrawCard(); err == nil {
		t.Fatal("expected error drawing from an exhausted deck")
	}
}

func TestShuffle_InvalidSize(t *testing.T) {
	d := Deck{}
	if err := d.Shuffle(); err == nil {
		t.Fatal("expected error for empty deck size")
	}
}

func TestDeal(t *testing.T) {
	d := NewDeck()
	for i := 0; i < 20; i++ {
		hand, err := d.Deal()
		if err != nil {
			t.Fatal(err)
		}
		seen := make(map[int]bool)
		for _, c := range hand {
			raw := card.CardToInt(c)
			if seen[raw] {
				t.Fatalf("card %d dealt twice in %v", raw, hand)
			}
			seen[raw] = true
		}
		if !card.HandFromCards(hand).Valid() {
			t.Fatalf("invalid hand %v", hand)
		}
	}
}

func TestFixed(t *testing.T) {
	f := &Fixed{Deals: [][card.HandSize]int{{4, 19, 34, 42}, {1, 14, 27, 40}}}
	var dealer Dealer = f
	expected := []card.Hand{{4, 6, 8, 3}, {1, 1, 1, 1}, {4, 6, 8, 3}}
	for i, want := range expected {
		hand, err := dealer.Deal()
		if err != nil {
			t.Fatal(err)
		}
		if got := card.HandFromCards(hand); got != want {
			t.Fatalf("deal %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestFixed_Errors(t *testing.T) {
	if _, err := (&Fixed{}).Deal(); err == nil {
		t.Fatal("expected error with no deals")
	}
	f := &Fixed{Deals: [][card.HandSize]int{{1, 2, 3, 99}}}
	if _, err := f.Deal(); err == nil {
		t.Fatal("expected error for raw card 99")
	}
}
