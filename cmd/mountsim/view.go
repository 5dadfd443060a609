package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newViewCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "view <scene.yaml>",
		Short: "Scroll a scene interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim := newSimulation(args[0], opts.cfg, opts.log)
			defer sim.tree.Release()

			if _, err := sim.reload(cmd.Context()); err != nil {
				return err
			}
			sim.scrollTo(0)

			p := tea.NewProgram(newViewModel(sim),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err := p.Run()
			return err
		},
	}
}

// viewModel scrolls a simulation. The terminal height, less the status
// bar, is the viewport.
type viewModel struct {
	sim    *simulation
	width  int
	events []string
}

func newViewModel(sim *simulation) *viewModel {
	return &viewModel{sim: sim}
}

func (m *viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.sim.viewport = max(msg.Height-1, 1)
		m.scroll(m.sim.offset)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			m.scroll(m.sim.offset + 1)
		case "up", "k":
			m.scroll(m.sim.offset - 1)
		case "pgdown", " ":
			m.scroll(m.sim.offset + m.sim.viewport)
		case "pgup":
			m.scroll(m.sim.offset - m.sim.viewport)
		case "g", "home":
			m.scroll(0)
		case "G", "end":
			m.scroll(m.sim.maxOffset())
		}
	}
	return m, nil
}

func (m *viewModel) scroll(y int) {
	m.sim.scrollTo(y)
	if ev := m.sim.rec.TakeEvents(); len(ev) > 0 {
		m.events = ev
	}
}

func (m *viewModel) View() string {
	var b strings.Builder
	lines := 0
	for _, o := range m.sim.mounted() {
		if lines >= m.sim.viewport {
			break
		}
		b.WriteString(outputLine(o))
		b.WriteByte('\n')
		lines++
	}
	for ; lines < m.sim.viewport; lines++ {
		b.WriteByte('\n')
	}

	status := fmt.Sprintf("%d/%d  %d mounted", m.sim.offset, m.sim.maxOffset(),
		m.sim.tree.MountState().MountedCount())
	if len(m.events) > 0 {
		status += "  " + strings.Join(m.events, ", ")
	}
	bar := statusStyle
	if m.width > 0 {
		bar = bar.Width(m.width)
	}
	b.WriteString(bar.Render(status))
	return b.String()
}
