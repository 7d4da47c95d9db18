package forms

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// Choice picks one of a fixed list of options with left/right or space
type Choice struct {
	key      string
	title    string
	options  []string
	selected int
	focused  bool
}

// NewChoice creates a choice field. An empty value selects the first option.
// Any other value missing from options is kept as an extra leading option so
// it is shown and saved as-is unless the user picks another one.
func NewChoice(key, title string, options []string, value string) *Choice {
	if value != "" && !slices.Contains(options, value) {
		options = append([]string{value}, options...)
	}
	return &Choice{
		key:      key,
		title:    title,
		options:  options,
		selected: max(slices.Index(options, value), 0),
	}
}

// Update cycles the selection
func (c *Choice) Update(msg tea.Msg) (Field, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !c.focused || len(c.options) == 0 {
		return c, nil
	}
	switch keyMsg.String() {
	case "right", "l", "space", " ":
		c.selected = (c.selected + 1) % len(c.options)
	case "left", "h":
		c.selected = (c.selected - 1 + len(c.options)) % len(c.options)
	}
	return c, nil
}

// View renders the options with the selected one highlighted
func (c *Choice) View() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	inactive := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	parts := make([]string, len(c.options))
	for i, opt := range c.options {
		if i == c.selected {
			parts[i] = active.Render("[" + opt + "]")
		} else {
			parts[i] = inactive.Render(" " + opt + " ")
		}
	}
	return titleStyle(c.focused).Render(c.title) + "\n" + strings.Join(parts, " ")
}

func (c *Choice) Focus() tea.Cmd {
	c.focused = true
	return nil
}

func (c *Choice) Blur() {
	c.focused = false
}

func (c *Choice) Focused() bool {
	return c.focused
}

func (c *Choice) Key() string {
	return c.key
}

// Value returns the selected option
func (c *Choice) Value() string {
	if len(c.options) == 0 {
		return ""
	}
	return c.options[c.selected]
}

func (c *Choice) Multiline() bool { return false }
