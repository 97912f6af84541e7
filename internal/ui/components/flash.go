package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FlashDuration is how long a flash message replaces the status line.
const FlashDuration = 3 * time.Second

type flashExpiredMsg struct{ seq int }

// Flash is a transient status message. A newer message replaces an older one
// and restarts the timer.
type Flash struct {
	text  string
	isErr bool
	seq   int
}

// Show displays text and returns the command that clears it.
func (f *Flash) Show(text string, isErr bool) tea.Cmd {
	f.seq++
	f.text = text
	f.isErr = isErr
	seq := f.seq
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg { return flashExpiredMsg{seq: seq} })
}

// Update clears the message when its own timer fires.
func (f Flash) Update(msg tea.Msg) Flash {
	if m, ok := msg.(flashExpiredMsg); ok && m.seq == f.seq {
		f.text = ""
		f.isErr = false
	}
	return f
}

func (f Flash) Active() bool  { return f.text != "" }
func (f Flash) Text() string  { return f.text }
func (f Flash) IsError() bool { return f.isErr }
