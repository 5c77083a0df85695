package main

import (
	"strconv"
	"strings"
)

type commandKind int

const (
	cmdVerify commandKind = iota
	cmdHint
	cmdNew
	cmdCard
	cmdHelp
	cmdQuit
)

type command struct {
	kind commandKind
	expr string
	card int // 0-based
}

// parseCommand recognizes the menu words; anything else is an answer.
func parseCommand(input string) command {
	input = strings.TrimSpace(input)
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return command{kind: cmdVerify, expr: input}
	}
	switch fields[0] {
	case "hint":
		return command{kind: cmdHint}
	case "new", "refresh":
		return command{kind: cmdNew}
	case "help", "?":
		return command{kind: cmdHelp}
	case "quit", "exit":
		return command{kind: cmdQuit}
	case "card":
		if len(fields) == 2 {
			if n, err := strconv.Atoi(fields[1]); err == nil {
				return command{kind: cmdCard, card: n - 1}
			}
		}
	}
	return command{kind: cmdVerify, expr: input}
}
