package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	componentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	traceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelect modelState = iota
	stateInput
	stateShowTrace
)

type interactiveModel struct {
	err      error
	input    textinput.Model
	trace    []string
	selected int
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "parameter (blank for default)"
	ti.CharLimit = 64
	return &interactiveModel{input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

type ranMsg struct {
	err   error
	trace []string
}

func (m *interactiveModel) runSelected() tea.Msg {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	step := Step{Component: demoOrder[m.selected]}
	param := strings.TrimSpace(m.input.Value())
	if param != "" {
		if err := applyParam(&step, param); err != nil {
			return ranMsg{err: err}
		}
	}

	if err := runStep(step, log); err != nil {
		return ranMsg{err: err}
	}

	var lines []string
	for _, e := range logs.All() {
		var fields []string
		for _, f := range e.Context {
			enc := zapcore.NewMapObjectEncoder()
			f.AddTo(enc)
			fields = append(fields, fmt.Sprintf("%s=%v", f.Key, enc.Fields[f.Key]))
		}
		lines = append(lines, strings.TrimSpace(e.Message+" "+strings.Join(fields, " ")))
	}
	return ranMsg{trace: lines}
}

// applyParam maps the single free-form input onto the step field the
// selected component cares about.
func applyParam(step *Step, param string) error {
	switch step.Component {
	case "buffer", "manager":
		n, err := strconv.Atoi(param)
		if err != nil {
			return fmt.Errorf("size must be an integer: %w", err)
		}
		step.Size = n
	case "chain":
		for _, part := range strings.Split(param, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return fmt.Errorf("values must be integers: %w", err)
			}
			step.Values = append(step.Values, v)
		}
	case "shared":
		n, err := strconv.Atoi(param)
		if err != nil {
			return fmt.Errorf("copies must be an integer: %w", err)
		}
		step.Copies = n
	case "guard":
		step.Name = param
	}
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInput || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
		case "up", "k":
			if m.state == stateSelect && m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.state == stateSelect && m.selected < len(demoOrder)-1 {
				m.selected++
			}
		case "enter":
			switch m.state {
			case stateSelect:
				m.state = stateInput
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			case stateInput:
				m.input.Blur()
				m.state = stateShowTrace
				m.err = nil
				m.trace = nil
				return m, m.runSelected
			case stateShowTrace:
				m.state = stateSelect
			}
		case "esc":
			m.input.Blur()
			m.state = stateSelect
		}
	case ranMsg:
		m.err = msg.err
		m.trace = msg.trace
		return m, nil
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ferric-continuum ownership demos"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelect:
		for i, name := range demoOrder {
			line := "  " + componentStyle.Render(name)
			if i == m.selected {
				line = selectedStyle.Render("> " + name)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n" + helpStyle.Render("up/down: select  enter: run  q: quit"))

	case stateInput:
		b.WriteString(componentStyle.Render(demoOrder[m.selected]) + "\n\n")
		b.WriteString(m.input.View() + "\n\n")
		b.WriteString(helpStyle.Render("enter: run  esc: back"))

	case stateShowTrace:
		b.WriteString(componentStyle.Render(demoOrder[m.selected]) + "\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
		}
		for _, line := range m.trace {
			b.WriteString(traceStyle.Render(line) + "\n")
		}
		b.WriteString("\n" + helpStyle.Render("enter: back  q: quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel())
	_, err := p.Run()
	return err
}
