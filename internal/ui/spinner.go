package ui

import (
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// spinnerModel drives a single bubbles spinner while a background job
// runs, exiting as soon as the job signals completion on done.
type spinnerModel struct {
	spin  spinner.Model
	label string
	done  <-chan error
	err   error
}

type jobDoneMsg struct{ err error }

func waitForJob(done <-chan error) tea.Cmd {
	return func() tea.Msg { return jobDoneMsg{err: <-done} }
}

func newSpinnerModel(label string, done <-chan error) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return spinnerModel{spin: s, label: label, done: done}
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForJob(m.done))
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case jobDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	return m.spin.View() + " " + m.label + "\n"
}

// RunWithSpinner runs work in the background, showing a spinner labeled
// label on stderr for as long as it takes, and returns work's error.
// When stderr isn't a terminal it runs work synchronously with no UI.
func RunWithSpinner(label string, work func() error) error {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return work()
	}

	done := make(chan error, 1)
	go func() { done <- work() }()

	program := tea.NewProgram(newSpinnerModel(label, done), tea.WithOutput(os.Stderr))
	final, err := program.Run()
	if err != nil {
		return err
	}
	return final.(spinnerModel).err
}
