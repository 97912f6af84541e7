package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"socialteam/internal/ui/theme"
)

// PromptSubmitMsg is emitted when the user confirms the input.
type PromptSubmitMsg struct {
	Field string
	Input string
}

// PromptCancelMsg is emitted when the user presses esc.
type PromptCancelMsg struct{}

var promptStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Accent).
	Foreground(theme.Text).
	Padding(0, 1)

// Prompt is a one-line input overlay backed by bubbles/textinput.
type Prompt struct {
	input   textinput.Model
	field   string
	label   string
	visible bool
	width   int
}

func NewPrompt() Prompt {
	ti := textinput.New()
	ti.CharLimit = 16
	return Prompt{input: ti}
}

func (p Prompt) Visible() bool { return p.visible }

// Open shows the prompt for field, prefilled with value.
func (p *Prompt) Open(field, label, value string) tea.Cmd {
	p.visible = true
	p.field = field
	p.label = label
	p.input.SetValue(value)
	p.input.CursorEnd()
	return p.input.Focus()
}

func (p *Prompt) SetWidth(w int) { p.width = w }

func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PromptCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			field := p.field
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PromptSubmitMsg{Field: field, Input: val} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Prompt) View() string {
	if !p.visible {
		return ""
	}
	w := p.width
	if w < 20 {
		w = 40
	}
	body := theme.Title.Render(p.label) + "\n" + "> " + p.input.View() + "\n" +
		theme.Muted.Render("enter: save  esc: cancel")
	return promptStyle.Width(w - 2).Render(body)
}
