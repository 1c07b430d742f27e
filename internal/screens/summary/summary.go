package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/screens/review"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// SummaryScreen displays the end-of-session report.
type SummaryScreen struct {
	summary quiz.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a finished session.
func New(summary quiz.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
	if len(s.summary.Breakdown) > 0 {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Review"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "r", "R":
		if len(s.summary.Breakdown) == 0 {
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: review.New(s.summary.GroupLabel, s.summary.Breakdown),
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s complete!", titleCase(sum.Kind.String()))))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d        Correct: %d        Score: %d%%",
		sum.AnsweredCount, sum.CorrectCount, sum.OverallPercent)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	if len(sum.Breakdown) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Nothing answered this time."))
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	heading := fmt.Sprintf("By %s", sum.GroupLabel)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(heading)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	labelWidth := 0
	for _, row := range sum.Breakdown {
		if w := lipgloss.Width(row.Key); w > labelWidth {
			labelWidth = w
		}
	}

	barWidth := min(width-8, 64)
	for _, row := range sum.Breakdown {
		label := fmt.Sprintf("%-*s  %2d/%2d", labelWidth, row.Key, row.Correct, row.Total)
		bar := components.ProgressBar{
			Label:       label,
			Percent:     float64(row.Percent) / 100,
			ShowPercent: true,
			Width:       barWidth,
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	return b.String()
}

// titleCase upper-cases the first letter of a kind label for display.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
