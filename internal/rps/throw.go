// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Throw, the value a player puts on the table.
//
// The three legal throws are numbered Rock=0, Paper=1, Scissors=2. With that
// numbering the whole game is one rule: a throw beats the throw whose index
// is one below it, wrapping around. Paper beats Rock, Scissors beats Paper,
// Rock beats Scissors. Invalid sits outside the ring and never takes part in
// a comparison.

package rps

import "strings"

// Throw is one of Rock, Paper, Scissors, or the Invalid sentinel.
type Throw int

const (
	Rock Throw = iota
	Paper
	Scissors
	Invalid
)

// legalThrows is the size of the dominance ring.
const legalThrows = 3

var throwNames = [...]string{
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
	Invalid:  "Invalid",
}

// Throws returns the legal throws in ring order.
func Throws() []Throw {
	return []Throw{Rock, Paper, Scissors}
}

// ParseThrow lowercases s, strips trailing whitespace and maps the exact words
// "rock", "paper" and "scissors" to their Throw. Everything else, including
// the empty string, is Invalid.
func ParseThrow(s string) Throw {
	switch strings.TrimRight(strings.ToLower(s), " \t\r\n\v\f") {
	case "rock":
		return Rock
	case "paper":
		return Paper
	case "scissors":
		return Scissors
	default:
		return Invalid
	}
}

// Valid reports whether t is one of the three legal throws.
func (t Throw) Valid() bool {
	return t >= Rock && t < Invalid
}

// Beats reports whether t defeats other. It is false whenever either side
// is not a legal throw.
func (t Throw) Beats(other Throw) bool {
	if !t.Valid() || !other.Valid() {
		return false
	}
	return t == (other+1)%legalThrows
}

func (t Throw) String() string {
	if t < Rock || t > Invalid {
		return throwNames[Invalid]
	}
	return throwNames[t]
}
