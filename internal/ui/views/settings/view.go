package settings

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	settingsdto "socialteam/internal/modules/settings/dto"
	"socialteam/internal/ui/theme"
)

// Port is the minimal interface this view needs from the settings use-case.
type Port interface {
	Show(ctx context.Context) (settingsdto.SettingsOutput, error)
	Set(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error)
}

// SavedMsg carries the settings after a load or an update.
type SavedMsg struct {
	Settings settingsdto.SettingsOutput
	Err      error
}

// EditDelayMsg asks the parent to open a prompt for the task delay.
type EditDelayMsg struct{ Current int }

const (
	rowNotifications = iota
	rowAutoStart
	rowTaskDelay
	rowCount
)

type Model struct {
	port     Port
	settings settingsdto.SettingsOutput
	cursor   int
	width    int
}

func New(port Port) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) Settings() settingsdto.SettingsOutput { return m.settings }

func (m *Model) SetWidth(w int) { m.width = w }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SavedMsg:
		if msg.Err == nil {
			m.settings = msg.Settings
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.cursor = (m.cursor + rowCount - 1) % rowCount
		case "down", "j":
			m.cursor = (m.cursor + 1) % rowCount
		case " ", "enter":
			switch m.cursor {
			case rowNotifications:
				v := !m.settings.Notifications
				return m, m.save(settingsdto.UpdateInput{Notifications: &v})
			case rowAutoStart:
				v := !m.settings.AutoStart
				return m, m.save(settingsdto.UpdateInput{AutoStart: &v})
			case rowTaskDelay:
				current := m.settings.TaskDelay
				return m, func() tea.Msg { return EditDelayMsg{Current: current} }
			}
		case "+", "=":
			if m.cursor == rowTaskDelay {
				v := m.settings.TaskDelay + 1
				return m, m.save(settingsdto.UpdateInput{TaskDelay: &v})
			}
		case "-":
			if m.cursor == rowTaskDelay && m.settings.TaskDelay > 0 {
				v := m.settings.TaskDelay - 1
				return m, m.save(settingsdto.UpdateInput{TaskDelay: &v})
			}
		}
	}
	return m, nil
}

// SetDelay stores a delay typed into the prompt.
func (m Model) SetDelay(seconds int) tea.Cmd {
	return m.save(settingsdto.UpdateInput{TaskDelay: &seconds})
}

func (m Model) View() string {
	rows := []string{
		fmt.Sprintf("Notifications       %s", onOff(m.settings.Notifications)),
		fmt.Sprintf("Auto-start tasks    %s", onOff(m.settings.AutoStart)),
		fmt.Sprintf("Delay between tasks %ds", m.settings.TaskDelay),
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Settings") + "\n\n")
	for i, row := range rows {
		if i == m.cursor {
			sb.WriteString(theme.Hot.Render("> "+row) + "\n")
		} else {
			sb.WriteString("  " + row + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("↑/↓: move  space: toggle  +/-: delay  esc: back"))
	style := theme.Card
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(sb.String())
}

func onOff(v bool) string {
	if v {
		return theme.Good.Render("on")
	}
	return theme.Muted.Render("off")
}

func (m Model) load() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Show(context.Background())
		return SavedMsg{Settings: out, Err: err}
	}
}

func (m Model) save(input settingsdto.UpdateInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Set(context.Background(), input)
		return SavedMsg{Settings: out, Err: err}
	}
}
