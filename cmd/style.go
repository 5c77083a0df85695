package main

import (
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/card24/domain/card"
	"github.com/luca-patrignani/card24/domain/game"
)

func printState(session *game.Session) {
	var panels []pterm.Panel
	for i, c := range session.Cards() {
		panels = append(panels, pterm.Panel{Data: printCardInfo(i, c)})
	}
	footer := pterm.Panel{Data: pterm.BgGreen.Sprintf(" Hints left: %d ", session.HintsLeft())}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		panels,
		{footer},
	}).Render()
}

func printCardInfo(i int, c card.Card) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.Sprintf("Card %d", i+1)).WithTitleTopLeft().Sprintf("%s", c.String())
}

func printHint(h game.Hint) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := pterm.LightYellow("|HINT|")
	if h.Final {
		title = pterm.LightGreen("|SOLUTION|")
	}
	pbox.WithTitle(title).WithTitleTopCenter().Println(h.Text)
}

func printHelp() {
	pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "Type an expression using each card value once, e.g. (8-6)*4*3"},
		{Level: 0, Text: "hint: get a hint (the last one shows a solution)"},
		{Level: 0, Text: "new: deal four new cards"},
		{Level: 0, Text: "card N: show the value of card N (1-4)"},
		{Level: 0, Text: "quit: leave the game"},
	}).Render()
}
