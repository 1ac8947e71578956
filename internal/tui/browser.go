// Package tui implements the interactive problem browser.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ivp"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type state int

const (
	stateList state = iota
	stateDetail
	stateEval
)

type model struct {
	state  state
	cursor int
	infos  []ivp.Info

	substrate string

	params      []float64
	paramCursor int
	editing     bool
	editBuf     string

	problem ivp.Problem
	derivs  []float64
	values  []float64
	evalErr error

	width  int
	height int
}

func NewBrowser() *model {
	return &model{
		state:     stateList,
		infos:     ivp.Catalog(),
		substrate: backend.DenseName,
		width:     80,
		height:    24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateList:
		return m.listKey(msg)
	case stateDetail:
		return m.detailKey(msg)
	case stateEval:
		return m.evalKey(msg)
	}
	return m, nil
}

func (m model) listKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.infos)-1 {
			m.cursor++
		}
	case "b":
		m.toggleSubstrate()
	case "enter", " ":
		m.state = stateDetail
		m.paramCursor = 0
		m.loadDefaults()
	}
	return m, nil
}

func (m model) detailKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			if m.paramCursor < len(m.params) {
				m.params[m.paramCursor] = val
			}
			m.editing = false
			m.editBuf = ""
		case "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "escape":
		m.state = stateList
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.params)-1 {
			m.paramCursor++
		}
	case "enter":
		if len(m.params) > 0 {
			m.editing = true
			m.editBuf = fmt.Sprintf("%g", m.params[m.paramCursor])
		}
	case "b":
		m.toggleSubstrate()
	case "e", " ":
		m.evaluate()
		m.state = stateEval
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m model) evalKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "escape":
		m.state = stateDetail
		return m, tea.ClearScreen
	case "b":
		m.toggleSubstrate()
		m.evaluate()
	case "e", " ":
		m.evaluate()
	}
	return m, nil
}

func (m *model) toggleSubstrate() {
	if m.substrate == backend.DenseName {
		m.substrate = backend.DualName
	} else {
		m.substrate = backend.DenseName
	}
}

func (m *model) ops() backend.Ops {
	if m.substrate == backend.DualName {
		return backend.Dual()
	}
	return backend.Dense()
}

func (m *model) loadDefaults() {
	info := m.infos[m.cursor]
	ctor, _, err := ivp.Lookup(info.Name)
	if err != nil {
		m.evalErr = err
		return
	}
	ns := m.ops()
	p, err := ctor(ivp.WithBackend(ns))
	if err != nil {
		m.evalErr = err
		return
	}
	m.params = append([]float64(nil), p.Args...)
	m.values = ns.ToSlice(p.InitialValues)
	m.evalErr = nil
}

func (m *model) evaluate() {
	info := m.infos[m.cursor]
	ctor, _, err := ivp.Lookup(info.Name)
	if err != nil {
		m.evalErr = err
		return
	}
	ns := m.ops()
	p, err := ctor(ivp.WithBackend(ns), ivp.WithParameters(m.params...))
	if err != nil {
		// Constructors that derive extra Args (the epidemic family appends
		// the population) reject the full Args vector as an override; fall
		// back to their defaults.
		p, err = ctor(ivp.WithBackend(ns))
	}
	if err != nil {
		m.evalErr = err
		return
	}
	m.problem = p
	m.values = ns.ToSlice(p.InitialValues)
	m.derivs = ns.ToSlice(p.VectorField(p.TimeSpan[0], p.InitialValues, p.Args...))
	m.evalErr = nil
}

func (m model) View() string {
	switch m.state {
	case stateList:
		return m.viewList()
	case stateDetail:
		return m.viewDetail()
	case stateEval:
		return m.viewEval()
	}
	return ""
}

func (m model) viewList() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("o d e z o o") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("      " + dim.Render("backend ") + magenta.Render(m.substrate) + "\n\n")

	for i, info := range m.infos {
		marker := "  "
		stiff := ""
		if info.Stiff {
			stiff = yellow.Render(" stiff")
		}
		if i == m.cursor {
			b.WriteString("    " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-26s", info.Name)) + dim.Render(info.Summary) + stiff + "\n")
		} else {
			b.WriteString("    " + marker + "  " + dim.Render(fmt.Sprintf("%-26s", info.Name)) + dimmer.Render(info.Summary) + stiff + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter open   b backend   q quit") + "\n")

	return b.String()
}

func (m model) viewDetail() string {
	info := m.infos[m.cursor]
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(info.Name) + "  " + dim.Render(info.Summary) + "\n")
	if info.Reference != "" {
		b.WriteString("      " + dimmer.Render(info.Reference) + "\n")
	}
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	b.WriteString("      " + dim.Render(fmt.Sprintf("dimension %d   backend ", info.Dim)) + magenta.Render(m.substrate) + "\n\n")

	if len(m.params) == 0 {
		b.WriteString("      " + dimmer.Render("no parameters") + "\n")
	}
	for i, v := range m.params {
		val := fmt.Sprintf("%12g", v)
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%12s", m.editBuf+"▋")
		}
		name := fmt.Sprintf("p%d", i)
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-6s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-6s", name)) + dim.Render(val) + "\n")
		}
	}

	if m.evalErr != nil {
		b.WriteString("\n      " + red.Render(m.evalErr.Error()) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  enter edit  b backend  e evaluate  esc back") + "\n")

	return b.String()
}

func (m model) viewEval() string {
	info := m.infos[m.cursor]
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(info.Name) + "  " + dim.Render("field at initial values") + "\n")
	b.WriteString("      " + dim.Render("backend ") + magenta.Render(m.substrate) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	if m.evalErr != nil {
		b.WriteString("      " + red.Render(m.evalErr.Error()) + "\n")
	} else {
		b.WriteString(fmt.Sprintf("      %s [%g, %g]\n\n", dim.Render("time span"), m.problem.TimeSpan[0], m.problem.TimeSpan[1]))
		limit := len(m.values)
		if limit > 12 {
			limit = 12
		}
		b.WriteString("      " + dim.Render(fmt.Sprintf("%-4s %14s %14s", "i", "u0", "du/dt")) + "\n")
		for i := 0; i < limit; i++ {
			b.WriteString(fmt.Sprintf("      %s %s %s\n",
				dim.Render(fmt.Sprintf("%-4d", i)),
				white.Render(fmt.Sprintf("%14.6g", m.values[i])),
				green.Render(fmt.Sprintf("%14.6g", m.derivs[i]))))
		}
		if limit < len(m.values) {
			b.WriteString("      " + dimmer.Render(fmt.Sprintf("… %d more components", len(m.values)-limit)) + "\n")
		}
		if len(m.derivs) > 1 {
			b.WriteString("\n      " + dim.Render("du/dt ") + cyan.Render(sparkline(m.derivs, 24)) + "\n")
		}
	}

	b.WriteString("\n" + dim.Render("      e re-evaluate  b backend  esc back") + "\n")

	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		v := data[i*step]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// Run starts the browser and blocks until the user quits.
func Run() error {
	p := tea.NewProgram(NewBrowser(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
