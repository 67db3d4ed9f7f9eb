// Package app contains the game session driver. It defines the App struct,
// its configuration, and the round lifecycle (read a throw, draw the
// opponent, evaluate, print), decoupled from the CLI entrypoint and from
// process exit codes.
package app
