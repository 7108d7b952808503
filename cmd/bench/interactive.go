package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateInput modelState = iota
	stateRunning
	stateShowResults
)

type benchModel struct {
	err     error
	input   textinput.Model
	spin    spinner.Model
	state   modelState
	iters   int
	results results
}

func newBenchModel() *benchModel {
	ti := textinput.New()
	ti.Placeholder = "100000"
	ti.Prompt = "iterations: "
	ti.Width = 20
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &benchModel{
		input: ti,
		spin:  sp,
		state: stateInput,
	}
}

type benchDoneMsg struct {
	results results
}

func (m *benchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *benchModel) startBench() tea.Cmd {
	iters := m.iters
	return func() tea.Msg {
		return benchDoneMsg{results: runBench(iters)}
	}
}

func (m *benchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInput || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "enter":
			switch m.state {
			case stateInput:
				raw := strings.TrimSpace(m.input.Value())
				if raw == "" {
					raw = m.input.Placeholder
				}
				iters, err := strconv.Atoi(raw)
				if err != nil || iters <= 0 {
					m.err = fmt.Errorf("invalid iteration count %q", raw)
					return m, nil
				}
				m.err = nil
				m.iters = iters
				m.state = stateRunning
				return m, tea.Batch(m.spin.Tick, m.startBench())

			case stateShowResults:
				m.state = stateInput
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			}
		}

	case benchDoneMsg:
		m.results = msg.results
		m.state = stateShowResults
		return m, nil

	case spinner.TickMsg:
		if m.state == stateRunning {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *benchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("dynrec bench"))
	b.WriteString("\n\n")

	switch m.state {
	case stateInput:
		b.WriteString("Measure field access strategies on a runtime-composed record.\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter run • ctrl+c quit"))

	case stateRunning:
		b.WriteString(m.spin.View())
		b.WriteString(fmt.Sprintf(" running %d iterations...", m.iters))

	case stateShowResults:
		perOp := func(total float64) string {
			return fmt.Sprintf("%.1f ns/op", total/float64(m.results.iters))
		}
		rows := []struct {
			label string
			ns    float64
		}{
			{"checked, by name", float64(m.results.byName.Nanoseconds())},
			{"raw, by index", float64(m.results.byIndex.Nanoseconds())},
			{"consumed struct", float64(m.results.cast.Nanoseconds())},
		}
		b.WriteString(fmt.Sprintf("Results over %d iterations:\n\n", m.results.iters))
		for _, row := range rows {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-18s", row.label)))
			b.WriteString(valueStyle.Render(perOp(row.ns)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter run again • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newBenchModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
