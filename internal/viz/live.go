package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Live replays a solved trajectory in the terminal: the chart grows
// point by point at a fixed frame rate. Keys: space pauses, r restarts,
// q quits.
type Live struct {
	title  string
	labels []string
	times  []float64
	series [][]float64 // per component, full length

	cursor int
	paused bool
	width  int
	height int
}

// NewLive builds the view from per-time rows (rows[i][j] = component j
// at time i).
func NewLive(title string, labels []string, times []float64, rows [][]float64) *Live {
	ncomp := 0
	if len(rows) > 0 {
		ncomp = len(rows[0])
	}
	series := make([][]float64, ncomp)
	for j := range series {
		series[j] = make([]float64, len(rows))
		for i := range rows {
			series[j][i] = rows[i][j]
		}
	}
	return &Live{
		title:  title,
		labels: labels,
		times:  times,
		series: series,
		cursor: 2,
		width:  80,
		height: 24,
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Live) Init() tea.Cmd { return tick() }

func (m *Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.cursor = 2
			m.paused = false
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tickMsg:
		if !m.paused && m.cursor < len(m.times) {
			m.cursor++
		}
		return m, tick()
	}
	return m, nil
}

func (m *Live) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render(m.title))
	b.WriteString("\n")

	if len(m.series) > 0 && m.cursor >= 2 {
		visible := make([][]float64, len(m.series))
		for j := range m.series {
			visible[j] = m.series[j][:m.cursor]
		}
		w := m.width - 12
		if w < 20 {
			w = 20
		}
		h := m.height - 8
		if h < 5 {
			h = 5
		}
		b.WriteString(panel.Render(Plot(visible, w, h, "")))
		b.WriteString("\n")
	}

	t := m.times[m.cursor-1]
	status := green.Render("running")
	if m.paused {
		status = yellow.Render("paused")
	}
	if m.cursor >= len(m.times) {
		status = dim.Render("done")
	}
	b.WriteString(fmt.Sprintf("%s  t=%s  point %s  %s\n",
		status,
		white.Render(fmt.Sprintf("%.4f", t)),
		white.Render(fmt.Sprintf("%d/%d", m.cursor, len(m.times))),
		dim.Render(strings.Join(m.labels, " ")),
	))
	b.WriteString(dim.Render("space pause · r restart · q quit"))
	b.WriteString("\n")

	return b.String()
}

// RunLive blocks until the user quits the replay.
func RunLive(title string, labels []string, times []float64, rows [][]float64) error {
	if len(times) < 2 {
		return fmt.Errorf("viz: need at least 2 points, got %d", len(times))
	}
	p := tea.NewProgram(NewLive(title, labels, times, rows))
	_, err := p.Run()
	return err
}
