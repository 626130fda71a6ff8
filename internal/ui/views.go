package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ashgrove-audio/pitchcore/internal/cli"
)

func renderTuner(m Model) string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FD7A7")).
		Render("pitchmon")
	subtitle := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true).
		Render(fmt.Sprintf("source: %s", m.Source))
	b.WriteString(title)
	b.WriteString("  ")
	b.WriteString(subtitle)
	b.WriteString("\n\n")

	if !m.HasFrame {
		b.WriteString("listening...\n")
		return b.String()
	}

	p := m.Latest

	if p.NoteName == "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("-- no pitch detected --"))
		b.WriteString("\n")
		return b.String()
	}

	noteStyle := cli.CentsStyle(p.Cents)
	noteLabel := noteStyle.Render(fmt.Sprintf("%s%d", p.NoteName, p.Octave))

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(noteLabel))
	b.WriteString(fmt.Sprintf("   %.2f Hz", p.Stabilized))
	b.WriteString("\n\n")

	b.WriteString(renderCentsMeter(p.Cents, 41))
	b.WriteString(fmt.Sprintf("  %+.0f cents\n\n", p.Cents))

	engine := "MPM"
	if p.UsingYIN {
		engine = "YIN"
	}
	b.WriteString(fmt.Sprintf("engine: %-3s  confidence: %s  raw: %.2f Hz\n",
		engine, renderConfidenceBar(p.Confidence, 20), p.Raw))
	b.WriteString(fmt.Sprintf("spectral centroid: %.1f Hz\n", p.SpectralCentroid))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 1).
		Width(50)
	footer := fmt.Sprintf("frames: %d  yin: %d  mpm: %d  (q to quit)", m.FramesSeen, m.YINFrames, m.MPMFrames)
	b.WriteString("\n")
	b.WriteString(box.Render(footer))
	b.WriteString("\n")

	return b.String()
}

// renderCentsMeter draws a centered needle meter spanning +/-50 cents
// across width characters.
func renderCentsMeter(cents float32, width int) string {
	if cents < -50 {
		cents = -50
	}
	if cents > 50 {
		cents = 50
	}

	center := width / 2
	pos := center + int((cents/50)*float32(center))
	if pos < 0 {
		pos = 0
	}
	if pos >= width {
		pos = width - 1
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == center && i == pos:
			b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FD7A7")).Render("|"))
		case i == pos:
			b.WriteString(cli.CentsStyle(cents).Render("●"))
		case i == center:
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("|"))
		default:
			b.WriteString("─")
		}
	}
	return b.String()
}

func renderConfidenceBar(confidence float32, width int) string {
	filled := int(confidence * float32(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %.0f%%", bar, confidence*100)
}
