// Package rps holds the rules of rock-paper-scissors: the Throw type, text
// parsing, and the pure Evaluate function that decides an Outcome. Nothing in
// this package reads input, prints, or exits the process.
package rps
