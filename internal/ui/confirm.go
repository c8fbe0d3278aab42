package ui

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/imsidplayer/sidratings/internal/ui/components/confirm"
	"github.com/mattn/go-isatty"
)

// Prompt styles accepted by NewConfirmer
const (
	StyleAuto  = "auto"
	StylePlain = "plain"
	StyleTUI   = "tui"
)

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to a Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// AlwaysYes accepts every question without asking.
var AlwaysYes Confirmer = ConfirmFunc(func(prompt string) bool {
	slog.Debug("auto-confirmed", "prompt", prompt)
	return true
})

// LinePrompt reads one line per question, like a shell read.
// End of input counts as a no.
type LinePrompt struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompt(in io.Reader, out io.Writer) *LinePrompt {
	return &LinePrompt{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompt) Confirm(prompt string) bool {
	fmt.Fprintf(p.out, "%s (y/N): ", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		slog.Debug("no answer", "prompt", prompt, "error", err)
		return false
	}
	answer := strings.TrimRight(line, "\r\n")
	ok := confirm.IsAffirmative(answer, confirm.DefaultAcceptedAnswers)
	slog.Debug("answered", "prompt", prompt, "answer", answer, "accepted", ok)
	return ok
}

// TUIPrompt asks through a bubbletea text input.
type TUIPrompt struct {
	In  io.Reader
	Out io.Writer
}

func (p TUIPrompt) Confirm(prompt string) bool {
	m := confirm.New()
	m.Prompt = prompt
	m.DefaultValue = confirm.Denied

	prog := tea.NewProgram(&m, tea.WithInput(p.In), tea.WithOutput(p.Out))
	if _, err := prog.Run(); err != nil {
		slog.Error("confirm failed", "error", err)
		return false
	}

	slog.Debug("answered", "prompt", prompt, "answer", m.Answer(), "decision", m.Selected())
	return m.Selected().IsAccepted()
}

// NewConfirmer picks a prompt for style. In auto style the bubbletea
// prompt is used only when in is a terminal.
func NewConfirmer(style string, in io.Reader, out io.Writer) Confirmer {
	switch style {
	case StyleTUI:
		return TUIPrompt{In: in, Out: out}
	case StylePlain:
		return NewLinePrompt(in, out)
	}
	if isTerminal(in) {
		return TUIPrompt{In: in, Out: out}
	}
	return NewLinePrompt(in, out)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
