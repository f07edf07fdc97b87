package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/hive/internal/cli/formatter"
	"github.com/alexanderramin/hive/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type timerKeys struct {
	Pause key.Binding
	Quit  key.Binding
	Help  key.Binding
}

func defaultTimerKeys() timerKeys {
	return timerKeys{
		Pause: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause/resume")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "give up")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
}

func (k timerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Quit, k.Help}
}

func (k timerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause}, {k.Quit, k.Help}}
}

// timerModel counts one timer run down a second at a time. It quits with
// finished set when the time runs out, or with quitting set when the user
// gives up.
type timerModel struct {
	mode      domain.TimerMode
	label     string
	total     time.Duration
	remaining time.Duration
	paused    bool
	finished  bool
	quitting  bool

	bar  progress.Model
	keys timerKeys
	help help.Model
}

func newTimerModel(mode domain.TimerMode, label string, total time.Duration) timerModel {
	return timerModel{
		mode:      mode,
		label:     label,
		total:     total,
		remaining: total,
		bar:       progress.New(progress.WithGradient(string(formatter.ColorAmber), string(formatter.ColorHoney)), progress.WithoutPercentage()),
		keys:      defaultTimerKeys(),
		help:      help.New(),
	}
}

func (m timerModel) Init() tea.Cmd {
	return tick()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(msg.Width-4, 60))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tickMsg:
		if m.finished || m.quitting {
			return m, nil
		}
		if !m.paused {
			m.remaining -= time.Second
		}
		if m.remaining <= 0 {
			m.remaining = 0
			m.finished = true
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m timerModel) elapsed() float64 {
	if m.total <= 0 {
		return 1
	}
	return 1 - float64(m.remaining)/float64(m.total)
}

func (m timerModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render(timerTitle(m.mode)))
	if m.label != "" {
		b.WriteString("  " + m.label)
	}
	b.WriteString("\n\n  " + formatter.Bold(formatter.FormatCountdown(m.remaining)))
	if m.paused {
		b.WriteString("  " + formatter.Dim("paused"))
	}
	b.WriteString("\n  " + m.bar.ViewAs(m.elapsed()) + "\n\n")
	if m.finished {
		b.WriteString("  " + formatter.StyleLeaf.Render("Time's up!") + "\n")
		return b.String()
	}
	b.WriteString("  " + m.help.View(m.keys) + "\n")
	return b.String()
}

func timerTitle(mode domain.TimerMode) string {
	switch mode {
	case domain.TimerBreather:
		return "Breather"
	case domain.TimerRefuel:
		return "Refuel"
	default:
		return "⬢ Focus cell"
	}
}
