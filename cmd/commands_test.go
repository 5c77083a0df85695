package main

import "testing"

func TestParseCommand(t *testing.T) {
	cases := []struct {
		input string
		want  command
	}{
		{"hint", command{kind: cmdHint}},
		{"  HINT ", command{kind: cmdHint}},
		{"new", command{kind: cmdNew}},
		{"quit", command{kind: cmdQuit}},
		{"help", command{kind: cmdHelp}},
		{"card 3", command{kind: cmdCard, card: 2}},
		{"card x", command{kind: cmdVerify, expr: "card x"}},
		{" (8-6)*4*3 ", command{kind: cmdVerify, expr: "(8-6)*4*3"}},
		{"", command{kind: cmdVerify, expr: ""}},
	}
	for _, c := range cases {
		if got := parseCommand(c.input); got != c.want {
			t.Errorf("parseCommand(%q) = %+v, want %+v", c.input, got, c.want)
		}
	}
}
