// Package tui implements the interactive bubbletea viewer: a scenario
// menu followed by a live particle-cloud render driven by a running
// fluid.Solver.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"sphfluid/internal/experiment"
	"sphfluid/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type screen int

const (
	screenMenu screen = iota
	screenSim
)

type model struct {
	registry  *experiment.Registry
	scenarios []string
	cursor    int

	screen   screen
	selected string
	exp      *experiment.Experiment

	camera *viz.Camera
	theme  viz.Theme

	running bool
	paused  bool
	speed   int

	energyHistory []float64

	width, height int
}

// NewModel builds the initial menu model listing every scenario the
// registry can build.
func NewModel() *model {
	registry := experiment.NewRegistry()
	return &model{
		registry:  registry,
		scenarios: registry.ListScenarios(),
		screen:    screenMenu,
		camera:    viz.NewCamera(),
		theme:     viz.ThemeOcean,
		speed:     1,
		width:     80,
		height:    24,
	}
}

func (m *model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		if m.screen != screenSim || m.exp == nil {
			return m, nil
		}
		if m.running && !m.paused {
			for i := 0; i < m.speed; i++ {
				m.exp.Solver().Step()
			}
			m.recordEnergy()
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) recordEnergy() {
	var ke float64
	for _, v := range m.exp.Solver().Velocities() {
		ke += v.X*v.X + v.Y*v.Y + v.Z*v.Z
	}
	m.energyHistory = append(m.energyHistory, ke)
	if len(m.energyHistory) > 120 {
		m.energyHistory = m.energyHistory[1:]
	}
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == screenMenu {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.scenarios)-1 {
				m.cursor++
			}
		case "enter", " ":
			return m.startSelected()
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "escape":
		m.screen = screenMenu
		m.exp = nil
		m.running = false
		return m, tea.ClearScreen
	case "ctrl+c":
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
	case "left", "h":
		m.camera.RotateY(-0.1)
	case "right", "l":
		m.camera.RotateY(0.1)
	case "up", "k":
		m.camera.RotateX(-0.1)
	case "down", "j":
		m.camera.RotateX(0.1)
	case "+", "=":
		m.camera.ZoomIn()
	case "-", "_":
		m.camera.ZoomOut()
	case "]":
		if m.speed < 8 {
			m.speed++
		}
	case "[":
		if m.speed > 1 {
			m.speed--
		}
	case "t":
		m.cycleTheme()
	}
	return m, nil
}

// cycleTheme advances to the next built-in theme, wrapping around.
func (m *model) cycleTheme() {
	names := viz.ThemeNames()
	for i, name := range names {
		if name == m.theme.Name {
			m.theme = viz.GetTheme(names[(i+1)%len(names)])
			return
		}
	}
	m.theme = viz.GetTheme(names[0])
}

func (m *model) startSelected() (tea.Model, tea.Cmd) {
	if len(m.scenarios) == 0 {
		return m, nil
	}
	name := m.scenarios[m.cursor]
	exp, err := m.registry.Build(name, false)
	if err != nil {
		return m, nil
	}
	m.exp = exp
	m.selected = name
	m.screen = screenSim
	m.running = true
	m.paused = false
	m.energyHistory = m.energyHistory[:0]
	m.camera = viz.NewCamera()
	return m, tea.Batch(tea.ClearScreen, tick())
}

func (m *model) View() string {
	if m.screen == screenMenu {
		return m.viewMenu()
	}
	return m.viewSim()
}

func (m *model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + cyan.Render("s p h f l u i d") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	for i, name := range m.scenarios {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(name) + "\n")
		} else {
			b.WriteString("        " + dim.Render(name) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter run   q quit") + "\n")
	return b.String()
}

func (m *model) viewSim() string {
	cw := m.width - 4
	ch := m.height - 10
	if cw < 40 {
		cw = 40
	}
	if ch < 10 {
		ch = 10
	}

	canvas := viz.NewCanvas(cw, ch)
	wf := viz.NewWireframe()
	wf.Edges = append(wf.Edges, viz.CreateCubeWireframe(2).Edges...)

	solver := m.exp.Solver()
	domain := solver.Params().Domain
	densities := solver.Densities()
	min, max := viz.NormalizeRange(densities)
	colormap := viz.NewColormap(m.theme, min, max)

	for _, p := range solver.Positions() {
		x := (p.X/domain.X)*2 - 1
		y := (p.Y/domain.Y)*2 - 1
		z := (p.Z/domain.Z)*2 - 1
		wf.AddPoint(viz.Vec3{X: x, Y: y, Z: z}, '*')
	}

	viz.Render3D(canvas, wf, m.camera)

	var b strings.Builder
	statusIcon := lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Render("●")
	statusText := "running"
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = "paused"
	}
	b.WriteString(fmt.Sprintf("\n  %s %s  %s  t=%.2fs  particles=%d  speed=%dx\n",
		statusIcon, cyan.Render(m.selected), statusText, solver.Time(), solver.Live(), m.speed))
	b.WriteString("  " + strings.Repeat("─", cw) + "\n")
	b.WriteString(canvas.String())
	b.WriteString("  " + strings.Repeat("─", cw) + "\n")
	b.WriteString(densityLegend(colormap, min, max))

	if len(m.energyHistory) > 1 {
		graph := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(6),
			asciigraph.Width(min2(cw, 70)),
			asciigraph.Caption("kinetic energy proxy"),
		)
		b.WriteString(graph + "\n")
	}

	b.WriteString(dim.Render("  arrows rotate  +/- zoom  [ ] speed  t theme  space pause  q menu\n"))
	return b.String()
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// densityLegend renders a ten-step density gradient bar spanning [min, max]
// using the same colormap applied to the rendered particle field.
func densityLegend(cm viz.Colormap, min, max float64) string {
	const steps = 10
	var b strings.Builder
	b.WriteString("  density ")
	for i := 0; i < steps; i++ {
		v := min + (max-min)*float64(i)/float64(steps-1)
		b.WriteString(lipgloss.NewStyle().Foreground(cm.Color(v)).Render("█"))
	}
	b.WriteString(fmt.Sprintf("  %.0f - %.0f\n", min, max))
	return b.String()
}

// Run launches the interactive viewer.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
