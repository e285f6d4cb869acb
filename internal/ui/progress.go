package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type fileItem struct {
	path   string
	status Status
}

type eventMsg Event
type doneMsg struct{}

type progressModel struct {
	title  string
	events <-chan Event
	sp     spinner.Model
	bar    progress.Model
	items  []fileItem
	index  map[string]int
	width  int
	done   bool
}

// NewProgressModel returns a bubbletea model rendering each file's
// progress through the pipeline as events arrive on the channel.
func NewProgressModel(title string, files []string, events <-chan Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 60

	items := make([]fileItem, len(files))
	index := make(map[string]int, len(files))
	for i, f := range files {
		items[i] = fileItem{path: f, status: StatusQueued}
		index[f] = i
	}
	return &progressModel{title: title, events: events, sp: sp, bar: bar, items: items, index: index, width: 80}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.sp.Tick, m.listen())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.apply(Event(msg))
		return m, tea.Batch(cmd, m.listen())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.sp, cmd = m.sp.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		next, cmd := m.bar.Update(msg)
		m.bar = next.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	header := lipgloss.NewStyle().Bold(true).Render(m.title)
	if m.done {
		header = "done: " + header
	} else {
		header = m.sp.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")

	nameWidth := m.width - 16
	if nameWidth < 20 {
		nameWidth = 20
	}
	for _, item := range m.items {
		name := truncate(item.path, nameWidth)
		status := styleStatus(item.status).Render(fmt.Sprintf("%10s", item.status))
		fmt.Fprintf(&b, "  %s %s\n", status, name)
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1.0))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) apply(ev Event) tea.Cmd {
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	m.items[idx].status = ev.Status

	done := 0
	for _, it := range m.items {
		if it.status == StatusDone || it.status == StatusError {
			done++
		}
	}
	return m.bar.SetPercent(float64(done) / float64(len(m.items)))
}

func styleStatus(s Status) lipgloss.Style {
	switch s {
	case StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case StatusWorking:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
