package task

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	queuedto "socialteam/internal/modules/queue/dto"
	"socialteam/internal/ui/theme"
)

// Model renders the queue projection: the current task, its countdown and
// the actions that are enabled right now.
type Model struct {
	view     queuedto.ViewOutput
	progress progress.Model
	spinner  spinner.Model
	busy     bool
	width    int
}

func New() Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Brand)
	return Model{
		progress: progress.New(progress.WithGradient(string(theme.Brand), string(theme.Accent))),
		spinner:  sp,
	}
}

// SetView replaces the projection and ends any pending operation.
func (m *Model) SetView(v queuedto.ViewOutput) {
	m.view = v
	m.busy = false
}

func (m Model) Current() queuedto.ViewOutput { return m.view }

// Busy marks an operation in flight and returns the spinner tick.
func (m *Model) Busy() tea.Cmd {
	m.busy = true
	return m.spinner.Tick
}

func (m *Model) SetWidth(w int) {
	m.width = w
	bar := w - 8
	if bar > 60 {
		bar = 60
	}
	if bar < 10 {
		bar = 10
	}
	m.progress.Width = bar
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok && m.busy {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	v := m.view
	var sb strings.Builder
	sb.WriteString(theme.Muted.Render(v.Counter) + "\n\n")
	sb.WriteString(theme.Title.Render(v.Title) + "\n")
	if v.Description != "" {
		sb.WriteString(v.Description + "\n")
	}
	if len(v.Steps) > 0 {
		sb.WriteString("\n")
		for i, step := range v.Steps {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}
	if v.TargetURL != "" {
		sb.WriteString("\n" + theme.Muted.Render(v.TargetURL) + "\n")
	}
	if v.Points > 0 && !v.AllComplete {
		sb.WriteString(theme.Hot.Render(fmt.Sprintf("+%d points", v.Points)) + "\n")
	}
	if v.TimerVisible {
		sb.WriteString("\n" + m.progress.ViewAs(v.Progress) + "  " + theme.Title.Render(v.Timer) + "\n")
	}
	if m.busy {
		sb.WriteString("\n" + m.spinner.View() + " working…\n")
	}
	sb.WriteString("\n" + m.actions())

	style := theme.Card
	if v.State == "running" {
		style = theme.CardActive
	}
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(sb.String())
}

func (m Model) actions() string {
	v := m.view
	var parts []string
	if v.CanStart {
		parts = append(parts, "enter: start")
	}
	if v.CanComplete {
		parts = append(parts, "c: complete")
	}
	if v.CanSkip {
		parts = append(parts, "s: skip")
	}
	if v.AllComplete {
		parts = append(parts, "r: load tasks again")
	}
	if len(parts) == 0 {
		return theme.Muted.Render("next task shortly…")
	}
	return theme.Muted.Render(strings.Join(parts, "  "))
}
