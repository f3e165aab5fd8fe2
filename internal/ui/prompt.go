package ui

import (
	"fmt"
	"strings"
)

// BarHeight is the height of the title and footer bars.
const BarHeight = 24

// Texts shown in the viewer chrome.
const (
	FooterText   = "Press Q to exit"
	PromptText   = "Exit? (Y/N)"
	TitlePattern = "Burned: %.1f%%  Step: %d"
)

// PromptAnswer is the outcome of a key press while the exit prompt is shown.
type PromptAnswer int

const (
	AnswerNone PromptAnswer = iota
	AnswerExit
	AnswerStay
)

// ExitPrompt tracks the Y/N confirmation shown before the viewer closes.
type ExitPrompt struct {
	open bool
}

// Open shows the prompt.
func (p *ExitPrompt) Open() { p.open = true }

// Visible reports whether the prompt is shown.
func (p *ExitPrompt) Visible() bool { return p.open }

// Answer feeds a key to the prompt. Only y and n are recognised, in either
// case; anything else leaves the prompt open.
func (p *ExitPrompt) Answer(key string) PromptAnswer {
	if !p.open {
		return AnswerNone
	}
	switch strings.ToLower(key) {
	case "y":
		p.open = false
		return AnswerExit
	case "n":
		p.open = false
		return AnswerStay
	}
	return AnswerNone
}

// Title formats the burn status shown above the grid.
func Title(burnedPercent float64, steps int) string {
	return fmt.Sprintf(TitlePattern, burnedPercent, steps)
}
