// Package deck deals cards for the 24 game.
//
// # Core Components
//
// Deck: a 52-card deck shuffled with the Ed25519 suite's random stream and
// drawn from the top, so a deal never repeats a card.
//
// Fixed: a Dealer replaying predetermined deals, for tests and demos.
//
// Dealer: the interface the game session uses to obtain four cards.
package deck
