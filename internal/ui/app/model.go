package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	queuedto "socialteam/internal/modules/queue/dto"
	runtimedto "socialteam/internal/modules/runtime/dto"
	statsdto "socialteam/internal/modules/stats/dto"
	apperrors "socialteam/internal/platform/errors"
	"socialteam/internal/ui/components"
	"socialteam/internal/ui/theme"
	settingsview "socialteam/internal/ui/views/settings"
	taskview "socialteam/internal/ui/views/task"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type queuePort interface {
	Load(ctx context.Context) (queuedto.ViewOutput, error)
	Start(ctx context.Context) (queuedto.ViewOutput, error)
	Tick(ctx context.Context) (queuedto.ViewOutput, error)
	Complete(ctx context.Context) (queuedto.ViewOutput, error)
	Skip(ctx context.Context) (queuedto.ViewOutput, error)
	Advance(ctx context.Context) (queuedto.ViewOutput, error)
}

type statsPort interface {
	Show(ctx context.Context) (statsdto.StatsOutput, error)
}

type healthPort interface {
	Health(ctx context.Context) (runtimedto.HealthOutput, error)
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screen int

const (
	screenWelcome screen = iota
	screenTask
	screenSettings
)

type connection int

const (
	connConnecting connection = iota
	connOnline
	connOffline
)

const (
	tickInterval  = time.Second
	probeInterval = 10 * time.Second
)

// ─── async messages ──────────────────────────────────────────────────────────

type statsMsg struct {
	stats statsdto.StatsOutput
	err   error
}

type healthMsg struct {
	health runtimedto.HealthOutput
	err    error
}

type probeMsg struct{}

// queueMsg carries the projection after a queue operation. gen is the
// generation the operation was issued under; timer ticks from an older
// generation are dropped.
type queueMsg struct {
	op   string
	gen  int
	view queuedto.ViewOutput
	err  error
}

type tickMsg struct{ gen int }

type advanceMsg struct{ gen int }

type autoStartMsg struct{ gen int }

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Enter    key.Binding
	Complete key.Binding
	Skip     key.Binding
	Refresh  key.Binding
	Settings key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
		Skip:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh tasks")),
		Settings: key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Settings, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Complete, k.Skip, k.Refresh},
		{k.Settings, k.Back},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the popup. It owns screen routing, the countdown and auto-advance
// timers, the connection indicator and flash messages; queue semantics live
// behind queuePort.
type Model struct {
	queue  queuePort
	stats  statsPort
	health healthPort

	taskView     taskview.Model
	settingsView settingsview.Model
	prompt       components.Prompt
	flash        components.Flash

	screen   screen
	previous screen
	keys     keyMap
	help     help.Model
	showHelp bool
	totals   statsdto.StatsOutput
	conn     connection
	version  string
	gen      int
	width    int
	height   int
}

func NewModel(queue queuePort, stats statsPort, settings settingsview.Port, health healthPort) Model {
	return Model{
		queue:        queue,
		stats:        stats,
		health:       health,
		taskView:     taskview.New(),
		settingsView: settingsview.New(settings),
		prompt:       components.NewPrompt(),
		keys:         defaultKeys(),
		help:         help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadStatsCmd(), m.settingsView.Init(), m.probeCmd())
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.flash = m.flash.Update(msg)

	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.prompt.Visible() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(keyMsg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.taskView.SetWidth(msg.Width)
		m.settingsView.SetWidth(msg.Width)
		m.prompt.SetWidth(min(msg.Width-4, 50))

	case statsMsg:
		if msg.err != nil {
			return m, m.flash.Show("Could not load stats: "+msg.err.Error(), true)
		}
		m.totals = msg.stats

	case healthMsg:
		if msg.err != nil {
			m.conn = connOffline
		} else {
			m.conn = connOnline
			m.version = msg.health.Version
		}
		return m, tea.Tick(probeInterval, func(time.Time) tea.Msg { return probeMsg{} })

	case probeMsg:
		return m, m.probeCmd()

	case queueMsg:
		return m.applyQueue(msg)

	case tickMsg:
		if msg.gen != m.gen || m.taskView.Current().State != "running" {
			return m, nil
		}
		return m, m.queueCmd("tick", m.queue.Tick)

	case advanceMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m, m.queueCmd("advance", m.queue.Advance)

	case autoStartMsg:
		if msg.gen != m.gen || !m.taskView.Current().CanStart {
			return m, nil
		}
		return m, m.queueCmd("start", m.queue.Start)

	case settingsview.SavedMsg:
		m.settingsView, _ = m.settingsView.Update(msg)
		if msg.Err != nil {
			return m, m.flash.Show("Could not save settings: "+msg.Err.Error(), true)
		}

	case settingsview.EditDelayMsg:
		return m, m.prompt.Open("taskDelay", "Delay between tasks (seconds)", strconv.Itoa(msg.Current))

	case components.PromptSubmitMsg:
		seconds, err := strconv.Atoi(msg.Input)
		if err != nil || seconds < 0 {
			return m, m.flash.Show("Delay must be a whole number of seconds", true)
		}
		return m, m.settingsView.SetDelay(seconds)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.taskView, cmd = m.taskView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case ",":
		if m.screen != screenSettings {
			m.previous = m.screen
			m.screen = screenSettings
		}
		return m, nil
	case "esc":
		switch m.screen {
		case screenSettings:
			m.screen = m.previous
		case screenTask:
			m.screen = screenWelcome
			return m, m.loadStatsCmd()
		}
		return m, nil
	}

	view := m.taskView.Current()
	switch m.screen {
	case screenWelcome:
		if msg.String() == "enter" {
			return m, tea.Batch(m.taskView.Busy(), m.queueCmd("load", m.queue.Load))
		}
	case screenTask:
		switch msg.String() {
		case "enter":
			if view.CanStart {
				return m, tea.Batch(m.taskView.Busy(), m.queueCmd("start", m.queue.Start))
			}
		case "c":
			if view.CanComplete {
				return m, m.queueCmd("complete", m.queue.Complete)
			}
		case "s":
			if view.CanSkip {
				return m, m.queueCmd("skip", m.queue.Skip)
			}
		case "r":
			return m, tea.Batch(m.taskView.Busy(), m.queueCmd("load", m.queue.Load))
		}
	case screenSettings:
		var cmd tea.Cmd
		m.settingsView, cmd = m.settingsView.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyQueue stores a new projection and schedules whatever timer the new
// state needs: the countdown while running, the advance delay after a
// finish, and the auto-start delay when enabled.
func (m Model) applyQueue(msg queueMsg) (tea.Model, tea.Cmd) {
	if msg.op == "tick" && msg.gen != m.gen {
		return m, nil
	}
	if msg.err != nil {
		m.taskView.SetView(m.taskView.Current())
		return m, m.flash.Show(describeQueueError(msg.err), true)
	}
	m.gen++
	gen := m.gen
	v := msg.view
	m.taskView.SetView(v)
	if msg.op == "load" {
		m.screen = screenTask
	}

	var cmds []tea.Cmd
	if v.State == "running" {
		cmds = append(cmds, tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{gen: gen} }))
	}
	if v.AdvanceAfter > 0 {
		cmds = append(cmds, tea.Tick(v.AdvanceAfter, func(time.Time) tea.Msg { return advanceMsg{gen: gen} }))
	}
	if v.State == "completed" || v.AllComplete {
		cmds = append(cmds, m.loadStatsCmd())
	}
	if msg.op == "advance" && v.CanStart {
		if s := m.settingsView.Settings(); s.AutoStart {
			delay := time.Duration(s.TaskDelay) * time.Second
			cmds = append(cmds,
				m.flash.Show(fmt.Sprintf("Next task starts in %ds", s.TaskDelay), false),
				tea.Tick(delay, func(time.Time) tea.Msg { return autoStartMsg{gen: gen} }),
			)
		}
	}
	return m, tea.Batch(cmds...)
}

func describeQueueError(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrTaskRunning):
		return "A task is already running"
	case errors.Is(err, apperrors.ErrNoCurrentTask):
		return "No task to start"
	default:
		return "Error: " + err.Error()
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	status := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(status)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.prompt.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.prompt.View())
	default:
		switch m.screen {
		case screenWelcome:
			content = m.renderWelcome()
		case screenTask:
			content = m.taskView.View()
		case screenSettings:
			content = m.settingsView.View()
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

func (m Model) renderHeader() string {
	title := theme.Header.Render("ClickForCharity Social Media Team")
	return title + "  " + m.renderConnection() + "\n"
}

func (m Model) renderConnection() string {
	switch m.conn {
	case connOnline:
		label := "● online"
		if m.version != "" {
			label += " v" + m.version
		}
		return theme.Good.Render(label)
	case connOffline:
		return theme.Bad.Render("● offline")
	default:
		return theme.Pending.Render("● connecting")
	}
}

func (m Model) renderWelcome() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Help charities grow their reach") + "\n")
	sb.WriteString("Complete short social media tasks and earn points for ClickForCharity.\n\n")
	sb.WriteString(fmt.Sprintf("Tasks completed  %s\n", theme.Hot.Render(strconv.Itoa(m.totals.TasksCompleted))))
	sb.WriteString(fmt.Sprintf("Points earned    %s\n\n", theme.Hot.Render(strconv.Itoa(m.totals.PointsEarned))))
	sb.WriteString(theme.Muted.Render("enter: start tasks  ,: settings  q: quit"))
	style := theme.Card
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(sb.String())
}

func (m Model) renderStatusBar() string {
	left := ""
	switch {
	case m.flash.Active() && m.flash.IsError():
		left = theme.Bad.Render(m.flash.Text())
	case m.flash.Active():
		left = theme.Good.Render(m.flash.Text())
	case m.screen == screenTask:
		left = m.taskView.Current().Status
	}
	right := theme.Muted.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return "\n" + left + strings.Repeat(" ", gap) + right
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) queueCmd(op string, fn func(context.Context) (queuedto.ViewOutput, error)) tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		v, err := fn(context.Background())
		return queueMsg{op: op, gen: gen, view: v, err: err}
	}
}

func (m Model) loadStatsCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.stats.Show(context.Background())
		return statsMsg{stats: out, err: err}
	}
}

func (m Model) probeCmd() tea.Cmd {
	if m.health == nil {
		return func() tea.Msg { return healthMsg{err: fmt.Errorf("no background configured")} }
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		out, err := m.health.Health(ctx)
		return healthMsg{health: out, err: err}
	}
}
