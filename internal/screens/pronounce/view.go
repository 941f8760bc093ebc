package pronounce

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	pron "github.com/samdyer/revoir/internal/pronounce"
	"github.com/samdyer/revoir/internal/ui/theme"
)

func (p *PronounceScreen) View(width, height int) string {
	if p.showResult && p.result != nil {
		return p.renderResult(width)
	}
	return p.renderTarget(width)
}

// renderTarget shows the sentence to repeat and the transcript input.
func (p *PronounceScreen) renderTarget(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Thème: %s", p.tut.Practice().Topic())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.French.Render("Répète après moi:")))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("“%s”", p.tut.Practice().Target())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Transcription: " + p.input.View()))

	return b.String()
}

// renderResult shows the tier, the score and the coaching notes.
func (p *PronounceScreen) renderResult(width int) string {
	r := p.result

	var b strings.Builder
	b.WriteString("\n")

	tierStyle := tierStyle(r.Tier)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(tierStyle.Render(r.Tier.Label())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Score: %d/100 (WER≈%.2f)", r.Score, r.WER)))
	b.WriteString("\n\n")

	if len(r.AccentNotes) > 0 {
		pairs := make([]string, len(r.AccentNotes))
		for i, m := range r.AccentNotes {
			pairs[i] = m.Want + "→" + m.Got
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Accents à surveiller: " + strings.Join(pairs, ", ")))
		b.WriteString("\n")
	}

	for _, tip := range r.Tips {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(tip))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("[N] nouvelle phrase   [R] réessayer"))

	return b.String()
}

func tierStyle(t pron.Tier) lipgloss.Style {
	switch t {
	case pron.TierExcellent:
		return theme.Correct
	case pron.TierGood:
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	case pron.TierNeedsWork:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	default:
		return theme.Incorrect
	}
}
