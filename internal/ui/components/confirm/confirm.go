package confirm

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jimschubert/answer/colors"
)

// DefaultAcceptedAnswers are the replies taken as a yes, compared in lower case.
var DefaultAcceptedAnswers = []string{"o", "oui", "y", "yes"}

// IsAffirmative reports whether answer is one of accepted, ignoring case.
// Anything else, including an empty answer, is a no.
func IsAffirmative(answer string, accepted []string) bool {
	return slices.Contains(accepted, strings.ToLower(answer))
}

// Decision is an enumeration of decisions available in the confirmation bubble
type Decision int

const (
	// Undecided indicates the state in which a user has not made a selection
	Undecided Decision = iota

	// Accepted indicates the user has provided a positive response
	Accepted

	// Denied indicates the user has provided a negative response
	Denied
)

// String satisfies the fmt.Stringer interface
func (d Decision) String() string {
	return [...]string{
		"undecided",
		"accepted",
		"denied",
	}[d]
}

// IsAccepted is a helper to indicate the positive confirmation state was selected
func (d Decision) IsAccepted() bool {
	return d == Accepted
}

// Styles holds relevant styles used for rendering
type Styles struct {
	PromptPrefix lipgloss.Style
	Prompt       lipgloss.Style
	Text         lipgloss.Style
	Placeholder  lipgloss.Style
}

// Model is a bubble tea model asking a question answered by typing a reply
// and pressing enter, like a terminal prompt.
type Model struct {
	// PromptPrefix is a character or other indicator existing before the user prompt, separately styled
	PromptPrefix string

	// Prompt is the question shown to the user
	Prompt string

	// Placeholder is shown while the reply is empty
	Placeholder string

	// AcceptedAnswers are the replies that accept; anything else denies
	AcceptedAnswers []string

	// DefaultValue is the decision before the user replies
	DefaultValue Decision

	Styles Styles

	selected Decision
	text     textinput.Model
	done     bool
}

// New creates a new model with default settings.
func New() Model {
	return Model{
		PromptPrefix:    "? ",
		Placeholder:     "y/N",
		AcceptedAnswers: DefaultAcceptedAnswers,
		DefaultValue:    Denied,
		Styles: Styles{
			PromptPrefix: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.PromptPrefix)),
			Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Placeholder)),
		},
	}
}

// Selected retrieves the default or user-selected Decision value
func (m *Model) Selected() Decision {
	return m.selected
}

// Answer returns what the user typed.
func (m *Model) Answer() string {
	return m.text.Value()
}

// Init satisfies the tea.Model interface
func (m *Model) Init() tea.Cmd {
	m.selected = m.DefaultValue

	input := textinput.New()
	input.Placeholder = m.Placeholder
	if strings.HasSuffix(m.Prompt, " ") {
		input.Prompt = m.Prompt
	} else {
		input.Prompt = m.Prompt + " "
	}
	input.PromptStyle = m.Styles.Prompt
	input.PlaceholderStyle = m.Styles.Placeholder
	input.TextStyle = m.Styles.Text
	input.Focus()
	m.text = input

	return textinput.Blink
}

// Update satisfies the tea.Model interface.
// Ctrl+C and Esc deny; Enter decides from the typed reply.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.selected = Denied
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			if IsAffirmative(m.text.Value(), m.AcceptedAnswers) {
				m.selected = Accepted
			} else {
				m.selected = Denied
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	return m, cmd
}

// View satisfies the tea.Model interface
func (m *Model) View() string {
	var b strings.Builder

	if m.PromptPrefix != "" {
		b.WriteString(m.Styles.PromptPrefix.Inline(true).Render(m.PromptPrefix))
	}

	if m.done {
		promptRender := m.Styles.Prompt.Inline(true).Render
		b.WriteString(promptRender(strings.TrimSuffix(m.Prompt, " ")))
		b.WriteString(promptRender(" "))
		b.WriteString(m.text.Value())
		b.WriteRune('\n')
		return b.String()
	}

	b.WriteString(m.text.View())
	return b.String()
}
