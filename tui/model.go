// Package tui is the interactive calculator. The model owns every field and
// recomputes the schedule only when the collected inputs change.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"loan-amortizer/domain"
	"loan-amortizer/input"
	"loan-amortizer/logging"
	"loan-amortizer/render"
)

const pageRows = 12

// Comparer produces a schedule together with its no-extra baseline.
type Comparer interface {
	Compare(ctx context.Context, in domain.LoanInputs) (domain.Comparison, bool)
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#87CEEB"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(20)
	focusedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFFF")).Width(20)
)

type Model struct {
	ctx      context.Context
	comparer Comparer
	now      func() time.Time
	logger   *logging.Logger
	renderer *render.Renderer
	keys     keyMap
	help     help.Model

	inputs    []textinput.Model
	focus     int
	offset    int
	printView bool
	width     int

	last         domain.LoanInputs
	computed     bool
	cmp          domain.Comparison
	ok           bool
	computations int
}

// New creates the model with the default loan filled in and computed.
func New(ctx context.Context, comparer Comparer, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	m := Model{
		ctx:      ctx,
		comparer: comparer,
		now:      time.Now,
		logger:   logger.WithComponent(logging.ComponentTUI),
		renderer: render.New(render.ColorTheme()),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.inputs = newInputs(input.Defaults(m.now()))
	m.inputs[m.focus].Focus()
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.moveFocus(-1)
		case key.Matches(msg, m.keys.PageDown):
			m.scroll(pageRows)
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.scroll(-pageRows)
			return m, nil
		case key.Matches(msg, m.keys.Print):
			m.printView = !m.printView
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			setValues(m.inputs, input.Defaults(m.now()))
			m.recompute()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recompute()
	return m, cmd
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *Model) scroll(delta int) {
	if !m.ok {
		return
	}
	last := max(0, len(m.cmp.Scenario.Rows)-pageRows)
	m.offset = max(0, min(m.offset+delta, last))
}

// recompute runs the calculation when the collected inputs differ from the
// last ones computed.
func (m *Model) recompute() {
	in := input.Collect(fieldsOf(m.inputs), m.now())
	if m.computed && in == m.last {
		return
	}

	m.last = in
	m.computed = true
	m.computations++
	m.offset = 0
	m.cmp, m.ok = m.comparer.Compare(m.ctx, in)

	m.logger.DebugContext(m.ctx, "Recomputed schedule",
		logging.FieldOperation, logging.OpCalculate,
		logging.FieldPrincipal, in.Principal,
		logging.FieldRate, in.AnnualRate,
		logging.FieldTermYears, in.TermYears,
		logging.FieldPayments, len(m.cmp.Scenario.Rows))
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Loan Amortization Calculator"))
	b.WriteString("\n\n")

	for i, ti := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = focusedStyle
		}
		fmt.Fprintf(&b, "%s %s\n", style.Render(fieldLabels[i]), ti.View())
	}
	b.WriteString("\n")

	switch {
	case !m.ok:
		_ = m.renderer.Prompt(&b)
	case m.printView:
		_ = render.PrintView(&b, m.last, m.cmp, m.now())
	default:
		_ = m.renderer.Summary(&b, m.cmp.Scenario)
		_ = m.renderer.Comparison(&b, m.cmp)
		_ = m.renderer.ScheduleWindow(&b, m.cmp.Scenario, m.offset, pageRows)
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Result returns the last computed comparison, ok is false when the inputs
// were incomplete.
func (m Model) Result() (domain.Comparison, bool) {
	return m.cmp, m.ok
}
