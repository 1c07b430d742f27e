package quiz

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	sess := s.engine.Session()
	if sess == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No active session.")
	}

	q := sess.Question()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Wrapping up...")
	}

	var b strings.Builder

	// Status line: position, score, countdown.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", q.Topic))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d   %s %d   %s",
			sess.Current+1,
			len(sess.Questions),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			sess.CorrectCount,
			s.renderTimer(),
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	// Countdown bar.
	if !s.showingFeedback {
		bar := components.ProgressBar{
			Percent:   float64(s.remaining) / float64(s.cfg.TimeLimit),
			Width:     min(width-8, 60),
			FillColor: s.timerColor(),
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	}
	b.WriteString("\n\n")

	// Question text.
	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, questionStyle.Render(q.Text)))
	b.WriteString("\n")

	if q.IsMulti && !s.showingFeedback {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("select all that apply"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))

	if s.showingFeedback {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}

	return b.String()
}

// renderTimer formats the countdown, tightening the color as it runs down.
func (s *QuizScreen) renderTimer() string {
	secs := int(s.remaining / time.Second)
	if secs < 0 {
		secs = 0
	}
	return lipgloss.NewStyle().
		Foreground(s.timerColor()).
		Bold(true).
		Render(fmt.Sprintf("⏱ %d:%02d", secs/60, secs%60))
}

func (s *QuizScreen) timerColor() color.Color {
	switch {
	case s.remaining <= 10*time.Second:
		return theme.Error
	case s.remaining <= 20*time.Second:
		return theme.Warning
	default:
		return theme.Secondary
	}
}

func (s *QuizScreen) renderFeedback(width int) string {
	out := s.outcome
	sess := s.engine.Session()
	if out == nil || sess == nil {
		return ""
	}
	q := sess.Question()

	var b strings.Builder

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch {
	case out.Correct:
		b.WriteString(center.
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	case out.TimedOut:
		b.WriteString(center.
			Foreground(theme.Error).
			Bold(true).
			Render("Time's up!"))
	default:
		b.WriteString(center.
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}

	if !out.Correct && q != nil {
		b.WriteString("\n")
		b.WriteString(center.
			Foreground(theme.TextDim).
			Render("Correct answer: " + answerLetters(out.CorrectIndices)))
	}

	if q != nil && q.Explanation != "" {
		b.WriteString("\n\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	}

	b.WriteString("\n\n")
	b.WriteString(center.
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// answerLetters renders correct indices as option letters ("A, C").
func answerLetters(indices []int) string {
	letters := make([]string, 0, len(indices))
	for _, i := range indices {
		letters = append(letters, string(rune('A'+i)))
	}
	return strings.Join(letters, ", ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
