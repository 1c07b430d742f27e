package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// ReviewScreen lists breakdown rows ranked most-missed first, pointing the
// user at what to study next.
type ReviewScreen struct {
	groupLabel string
	rows       []quiz.KeyStat
}

var _ screen.Screen = (*ReviewScreen)(nil)

// New creates a review screen from a summary breakdown.
func New(groupLabel string, rows []quiz.KeyStat) *ReviewScreen {
	return &ReviewScreen{
		groupLabel: groupLabel,
		rows:       quiz.RankByMissed(rows),
	}
}

func (r *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (r *ReviewScreen) Title() string {
	return "Review"
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return r, nil
}

func (r *ReviewScreen) View(width, height int) string {
	var b strings.Builder

	heading := fmt.Sprintf("%ss to review", titleCase(r.groupLabel))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(heading))
	b.WriteString("\n\n")

	for i, row := range r.rows {
		missed := row.Total - row.Correct

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if missed == 0 {
			style = style.Foreground(theme.TextDim)
		} else if i == 0 {
			style = style.Foreground(theme.Accent).Bold(true)
		}

		line := fmt.Sprintf("  %d. %-24s missed %d of %d (%d%%)",
			i+1, row.Key, missed, row.Total, row.Percent)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if len(r.rows) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Nothing to review yet."))
	}

	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
