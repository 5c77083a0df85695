// Package config reads the game's settings from CARD24_* environment
// variables.
package config
