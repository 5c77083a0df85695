package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/paulhankin/poker"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/card24/config"
	"github.com/luca-patrignani/card24/domain/deck"
	"github.com/luca-patrignani/card24/domain/expression"
	"github.com/luca-patrignani/card24/domain/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level))
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("2", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("4", pterm.FgDarkGray.ToStyle()),
	).Render()

	spinner, _ := pterm.DefaultSpinner.Start("Shuffling the cards ...")
	session, err := game.NewSession(
		deck.NewDeck(),
		game.WithMaxHints(cfg.MaxHints),
		game.WithMaxDepth(cfg.MaxDepth),
	)
	if err != nil {
		spinner.Fail()
		logger.Error("failed to start a game", "error", err)
		os.Exit(1)
	}
	spinner.Success()
	logDeal(logger, session)
	printState(session)

	for {
		input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter an expression (or hint, new, card N, help, quit)").Show()
		pterm.Println()
		cmd := parseCommand(input)
		switch cmd.kind {
		case cmdQuit:
			pterm.Info.Println("Bye!")
			return
		case cmdHelp:
			printHelp()
		case cmdNew:
			if err := session.Refresh(); err != nil {
				logger.Error("failed to deal", "error", err)
				os.Exit(1)
			}
			logDeal(logger, session)
			printState(session)
		case cmdCard:
			v, err := session.CardValue(cmd.card)
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			pterm.Info.Printfln("This card's value is: %d", v)
		case cmdHint:
			hint, err := session.Hint()
			if err != nil {
				pterm.Warning.Println(err.Error())
				continue
			}
			logger.Debug("hint requested", "level", hint.Level, "left", session.HintsLeft())
			printHint(hint)
		case cmdVerify:
			if !verify(logger, session, cmd.expr) {
				continue
			}
			logDeal(logger, session)
			printState(session)
		}
	}
}

// verify checks an answer and reports the outcome. It returns true when the
// answer was correct and a new deal is in play.
func verify(logger *slog.Logger, session *game.Session, expr string) bool {
	hand := session.Hand()
	res, err := session.Verify(expr)
	var mismatch *game.UsageMismatchError
	var syntaxErr *expression.SyntaxError
	switch {
	case errors.As(err, &mismatch):
		logger.Debug("wrong numbers", "expected", mismatch.Expected, "actual", mismatch.Actual)
		pterm.Error.Printfln("Your expression does not use the four card values exactly once.\nCards are: %v\nYou used: %v", mismatch.Expected, mismatch.Actual)
		return false
	case errors.As(err, &syntaxErr):
		logger.Debug("invalid expression", "expression", expr, "error", syntaxErr)
		pterm.Error.Printfln("Invalid expression.\n%s", syntaxErr.Error())
		return false
	case err != nil:
		pterm.Error.Println(err.Error())
		return false
	}
	if !res.Solved {
		pterm.Info.Println(res.String())
		return false
	}
	logger.Info("solved", "hand", hand, "expression", expr)
	pterm.Success.Println(res.String() + " Great job!")
	return true
}

func logDeal(logger *slog.Logger, session *game.Session) {
	cards := make([]poker.Card, 0, len(session.Cards()))
	for _, c := range session.Cards() {
		pc, err := c.Poker()
		if err != nil {
			logger.Error("invalid card in deal", "card", c, "error", err)
			continue
		}
		cards = append(cards, pc)
	}
	logger.Info("new deal", "cards", fmt.Sprint(cards), "hand", session.Hand())
}
