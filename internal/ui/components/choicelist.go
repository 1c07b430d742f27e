package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// ChoiceList presents a question's options. In single mode, Enter submits
// the highlighted option; in multi mode, Space toggles checkmarks and Enter
// submits the checked set. After Reveal it colorizes the answer key.
type ChoiceList struct {
	Options []string
	Multi   bool

	Cursor  int
	checked map[int]bool

	revealed bool
	selected map[int]bool
	correct  map[int]bool
}

// NewChoiceList creates a choice list for the given options.
func NewChoiceList(options []string, multi bool) ChoiceList {
	return ChoiceList{
		Options: options,
		Multi:   multi,
		checked: make(map[int]bool),
	}
}

// Init returns nil (no initial command).
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and multi-select toggling. Submission is
// the owning screen's concern.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.revealed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ":
		if c.Multi {
			c.checked[c.Cursor] = !c.checked[c.Cursor]
		}
	}

	return c, nil
}

// MoveTo places the cursor on a specific option (for number-key shortcuts).
func (c *ChoiceList) MoveTo(i int) {
	if i >= 0 && i < len(c.Options) {
		c.Cursor = i
	}
}

// Toggle flips the checkmark on an option in multi mode.
func (c *ChoiceList) Toggle(i int) {
	if c.Multi && !c.revealed && i >= 0 && i < len(c.Options) {
		c.Cursor = i
		c.checked[i] = !c.checked[i]
	}
}

// Selection returns the indices the user currently has selected: the
// checked set in multi mode, the highlighted option otherwise.
func (c ChoiceList) Selection() []int {
	if c.Multi {
		var out []int
		for i := range c.Options {
			if c.checked[i] {
				out = append(out, i)
			}
		}
		return out
	}
	if len(c.Options) == 0 {
		return nil
	}
	return []int{c.Cursor}
}

// Reveal freezes the list and colorizes it against the answer key.
func (c *ChoiceList) Reveal(selected, correct []int) {
	c.revealed = true
	c.selected = make(map[int]bool, len(selected))
	for _, i := range selected {
		c.selected[i] = true
	}
	c.correct = make(map[int]bool, len(correct))
	for _, i := range correct {
		c.correct[i] = true
	}
}

// Revealed reports whether the answer key is showing.
func (c ChoiceList) Revealed() bool {
	return c.revealed
}

// View renders the list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		label := string(rune('A' + i))
		marker := ""
		if c.Multi {
			if c.checked[i] || (c.revealed && c.selected[i]) {
				marker = "[x] "
			} else {
				marker = "[ ] "
			}
		}

		prefix := "  "
		if i == c.Cursor && !c.revealed {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s)  %s%s", prefix, label, marker, opt)

		if c.revealed {
			switch {
			case c.correct[i]:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case c.selected[i]:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == c.Cursor {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}
	return s
}
