// Package ui provides the Bubbletea terminal interface for pitchmon, a
// live tuner display driven by the pitch-detection pipeline.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubbletea model for the live tuner view.
type Model struct {
	Source string // description of the input being analyzed

	Latest   PitchMsg
	HasFrame bool

	FramesSeen int
	YINFrames  int
	MPMFrames  int

	// PitchChan delivers analysis results from the pipeline goroutine.
	PitchChan chan tea.Msg

	Width  int
	Height int
	Done   bool
}

// NewModel creates a tuner model reading from pitchChan.
func NewModel(source string, pitchChan chan tea.Msg) Model {
	return Model{Source: source, PitchChan: pitchChan}
}

func (m Model) Init() tea.Cmd {
	return waitForPitch(m.PitchChan)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case PitchMsg:
		m.Latest = msg
		m.HasFrame = true
		m.FramesSeen++
		if msg.UsingYIN {
			m.YINFrames++
		}
		if msg.UsingMPM {
			m.MPMFrames++
		}
		return m, waitForPitch(m.PitchChan)

	case QuitMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	if m.Width == 0 {
		return "Starting pitchmon...\n"
	}
	if m.Done {
		return renderSummary(m)
	}
	return renderTuner(m)
}

func waitForPitch(pitchChan chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-pitchChan
	}
}

func renderSummary(m Model) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyzed %d frames (%d YIN, %d MPM) from %s\n", m.FramesSeen, m.YINFrames, m.MPMFrames, m.Source)
	return b.String()
}
