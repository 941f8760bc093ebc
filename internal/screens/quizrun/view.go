package quizrun

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/samdyer/revoir/internal/ui/components"
	"github.com/samdyer/revoir/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	if q.done {
		return q.renderSummary(width)
	}
	if q.showingFeedback {
		return q.renderFeedback(width)
	}
	return q.renderQuestion(width)
}

// renderQuestion renders the open prompt with the progress line.
func (q *QuizScreen) renderQuestion(width int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", q.answered+1, q.total))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			q.correct,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4))))
	b.WriteString("\n\n")

	if q.total > 0 {
		bar := components.NewProgressBar("", float64(q.answered)/float64(q.total), false, min(width-8, 40))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n\n")
	}

	promptStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(promptStyle.Render(q.prompt))
	b.WriteString("\n\n")

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Réponse: " + q.input.View())
	b.WriteString(answerLine)

	return b.String()
}

// renderFeedback renders the verdict overlay.
func (q *QuizScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	verdictStyle := theme.Incorrect
	if q.lastCorrect {
		verdictStyle = theme.Correct
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(verdictStyle.Render(q.verdict)))
	b.WriteString("\n\n")

	if q.saveErr != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("Sauvegarde impossible: %v", q.saveErr)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Appuie sur une touche pour continuer..."))

	return b.String()
}

// renderSummary renders the end-of-quiz tally.
func (q *QuizScreen) renderSummary(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("Quiz terminé, bravo !"))
	b.WriteString("\n\n")

	if q.answered > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("%d/%d bonnes réponses", q.correct, q.answered)))
		b.WriteString("\n\n")
	} else {
		// Nothing was asked: surface the session message instead.
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(q.prompt))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Appuie sur une touche pour revenir au menu."))

	return b.String()
}
