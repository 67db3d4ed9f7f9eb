// Package console renders the game for a terminal.
//
// Rule: rps values are for code, these lines are for humans. Everything a
// player reads on stdout is produced here, so the order and wording of a
// round live in one place.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/vk/rps/internal/rps"
)

// ClearSequence erases the terminal and homes the cursor.
const ClearSequence = "\x1b[2J\x1b[1;1H"

// Refusal is the diagnostic for a throw that could not be parsed.
const Refusal = "I'm not playing with you now."

var (
	labelStyle = color.New(color.FgMagenta, color.OpBold)
	alertStyle = color.New(color.FgRed, color.OpBold)

	// One style per letter of "play" in the banner.
	bannerStyles = []color.Style{
		color.New(color.FgRed, color.OpBold),
		color.New(color.FgGreen, color.OpBold),
		color.New(color.FgYellow, color.OpBold),
		color.New(color.FgBlue, color.OpBold),
	}
)

var throwEmoji = map[rps.Throw]string{
	rps.Rock:     "🪨",
	rps.Paper:    "🧻",
	rps.Scissors: "✂️",
}

var outcomeText = map[rps.Outcome]string{
	rps.Win:  "You win, congrats! 🎉",
	rps.Lose: "Sorry, you lose 😿",
	rps.Tie:  "It's a tie! 👔",
}

// Printer writes game lines to w, styled when colored is set.
type Printer struct {
	w       io.Writer
	colored bool
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, colored bool) *Printer {
	return &Printer{w: w, colored: colored}
}

func (p *Printer) paint(style color.Style, s string) string {
	return paint(p.colored, style, s)
}

func paint(colored bool, style color.Style, s string) string {
	if !colored {
		return s
	}
	return style.Sprint(s)
}

// ClearScreen resets the terminal at the start of a round.
func (p *Printer) ClearScreen() {
	fmt.Fprint(p.w, ClearSequence)
}

// Banner prints "Let's play 🪨🧻✂️!".
func (p *Printer) Banner() {
	var b strings.Builder
	for i, r := range "play" {
		b.WriteString(p.paint(bannerStyles[i], string(r)))
	}
	fmt.Fprintf(p.w, "Let's %s 🪨🧻✂️!\n", b.String())
}

// AskThrow prompts for the human throw.
func (p *Printer) AskThrow() {
	fmt.Fprintln(p.w, p.paint(labelStyle, "What do you throw?"))
}

// HumanThrow announces the human throw.
func (p *Printer) HumanThrow(t rps.Throw) {
	fmt.Fprintf(p.w, "%s %s\n", p.paint(labelStyle, "You threw..."), ThrowLabel(t))
}

// ComputerThrow announces the opponent throw.
func (p *Printer) ComputerThrow(t rps.Throw) {
	fmt.Fprintf(p.w, "%s %s\n", p.paint(labelStyle, "Computer throws"), ThrowLabel(t))
}

// Result announces the outcome of the round.
func (p *Printer) Result(o rps.Outcome) {
	fmt.Fprintf(p.w, "%s %s\n", p.paint(labelStyle, "Result:"), OutcomeLabel(o))
}

// AskContinue prompts for another round.
func (p *Printer) AskContinue() {
	fmt.Fprintln(p.w, p.paint(labelStyle, "Press ENTER to play again, or anything else to quit"))
}

// ThrowLabel returns "Rock 🪨" style text for t.
func ThrowLabel(t rps.Throw) string {
	if emoji, ok := throwEmoji[t]; ok {
		return t.String() + " " + emoji
	}
	return "Invalid Input 🐛"
}

// OutcomeLabel returns the sentence shown for o.
func OutcomeLabel(o rps.Outcome) string {
	if text, ok := outcomeText[o]; ok {
		return text
	}
	return o.String()
}

// Alert renders msg as a fatal diagnostic.
func Alert(msg string, colored bool) string {
	return paint(colored, alertStyle, msg)
}
