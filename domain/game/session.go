package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luca-patrignani/card24/domain/card"
	"github.com/luca-patrignani/card24/domain/deck"
	"github.com/luca-patrignani/card24/domain/expression"
	"github.com/luca-patrignani/card24/domain/solver"
)

// DefaultMaxHints is the number of hints available for each deal.
const DefaultMaxHints = 3

var (
	ErrEmptyExpression = errors.New("please enter an expression first")
	ErrNoHintsLeft     = errors.New("no more hints available for this card configuration")
)

// Session is one player's game: the four cards in play and the hints used
// on them. It is not safe for concurrent use.
type Session struct {
	dealer     deck.Dealer
	cards      [card.HandSize]card.Card
	hand       card.Hand
	hintsUsed  int
	maxHints   int
	parserOpts []expression.Option

	// solution is computed on the first hint of each deal.
	solution *solver.Term
	searched bool
}

type sessionOption func(Session) Session

// WithMaxHints sets how many hints each deal allows. Non-positive values
// are ignored.
func WithMaxHints(n int) sessionOption {
	return func(s Session) Session {
		if n > 0 {
			s.maxHints = n
		}
		return s
	}
}

// WithMaxDepth bounds the nesting depth accepted from player input.
func WithMaxDepth(depth int) sessionOption {
	return func(s Session) Session {
		s.parserOpts = append(s.parserOpts, expression.WithMaxDepth(depth))
		return s
	}
}

// NewSession creates a session and deals its first four cards.
func NewSession(dealer deck.Dealer, opts ...sessionOption) (*Session, error) {
	if dealer == nil {
		return nil, fmt.Errorf("nil dealer")
	}
	s := Session{dealer: dealer, maxHints: DefaultMaxHints}
	for _, opt := range opts {
		s = opt(s)
	}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Refresh deals four new cards and restores the hint budget.
func (s *Session) Refresh() error {
	cards, err := s.dealer.Deal()
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}
	s.cards = cards
	s.hand = card.HandFromCards(cards)
	s.hintsUsed = 0
	s.solution = nil
	s.searched = false
	return nil
}

// Cards returns the cards in play.
func (s *Session) Cards() [card.HandSize]card.Card {
	return s.cards
}

// Hand returns the ranks of the cards in play.
func (s *Session) Hand() card.Hand {
	return s.hand
}

// CardValue returns the rank of the card at position i (0-3).
func (s *Session) CardValue(i int) (int, error) {
	if i < 0 || i >= card.HandSize {
		return 0, fmt.Errorf("card position %d out of range [0,%d]", i, card.HandSize-1)
	}
	return s.hand[i], nil
}

// HintsLeft reports how many hints remain for the current deal.
func (s *Session) HintsLeft() int {
	return s.maxHints - s.hintsUsed
}

// Verify checks the player's answer for the current deal. Any attempt
// restores the hint budget; a correct answer also deals new cards.
func (s *Session) Verify(input string) (Result, error) {
	s.hintsUsed = 0
	expr := strings.TrimSpace(input)
	if expr == "" {
		return Result{}, ErrEmptyExpression
	}
	res, err := Verify(s.hand, expr, s.parserOpts...)
	if err != nil {
		return Result{}, err
	}
	if res.Solved {
		if err := s.Refresh(); err != nil {
			return res, err
		}
	}
	return res, nil
}
