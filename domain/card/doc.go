// Package card models the playing cards dealt in a round of the 24 game.
//
// Raw cards are numbered 1 to 52 (clubs, diamonds, hearts, spades, each from
// ace to king). Only the rank of a card takes part in the arithmetic, so a
// deal is reduced to a Hand of four ranks in [1,13].
package card
