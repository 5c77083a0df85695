package card

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"
	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Ace   = 1  // A
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
)

// DeckSize is the number of raw card identifiers, 1 through 52.
const DeckSize = 52

// ErrInvalidCard is returned for raw identifiers or (suit, rank) pairs
// outside the standard 52-card deck.
var ErrInvalidCard = errors.New("invalid card")

// Card represents a playing card with suit and rank.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 1-13: ace through king
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > Spade || rank < Ace || rank > King {
		return Card{}, fmt.Errorf("%w %d, %d", ErrInvalidCard, suit, rank)
	}
	if _, err := poker.MakeCard(poker.Suit(suit), poker.Rank(rank)); err != nil {
		return Card{}, fmt.Errorf("%w %d, %d: %w", ErrInvalidCard, suit, rank, err)
	}
	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 1-13 within each suit.
//
// Card numbering:
//   - 1-13: Clubs (Ace through King)
//   - 14-26: Diamonds (Ace through King)
//   - 27-39: Hearts (Ace through King)
//   - 40-52: Spades (Ace through King)
func IntToCard(rawCard int) (Card, error) {
	if rawCard > DeckSize || rawCard < 1 {
		return Card{}, fmt.Errorf("%w: raw value %d", ErrInvalidCard, rawCard)
	}
	suit := uint8((rawCard - 1) / 13)
	return NewCard(suit, uint8(RankOf(rawCard)))
}

// RankOf returns the face value of a raw card number, independent of suit.
// The result is in [1,13] for every raw value in [1,52].
func RankOf(rawCard int) int {
	return (rawCard-1)%13 + 1
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(c Card) int {
	return int(c.suit)*13 + int(c.rank)
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (1-13: ace through king).
func (c Card) Rank() uint8 {
	return c.rank
}

// Poker converts the Card to the evaluator's representation.
func (c Card) Poker() (poker.Card, error) {
	return poker.MakeCard(poker.Suit(c.suit), poker.Rank(c.rank))
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	var rankStr string
	switch c.rank {
	case Ace:
		rankStr = "A"
	case Jack:
		rankStr = "J"
	case Queen:
		rankStr = "Q"
	case King:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", c.rank)
	}
	return rankStr + suit
}
