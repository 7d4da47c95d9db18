package task

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
)

// shortID is the id prefix shown in listings; any unique prefix is accepted back
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// printSummary prints the field lines shown after create and update
func printSummary(t models.Task) {
	fmt.Printf("  Column: %s\n", t.Column.OrDefault().Title())
	fmt.Printf("  Priority: %s\n", styles.RenderPriority(t.Priority))
	fmt.Printf("  Category: %s\n", t.Category)
	if t.DueDate != "" {
		fmt.Printf("  Due: %s\n", t.DueDate)
	}
}

// renderDetail renders a task as a card with its description as markdown
func renderDetail(t models.Task, board string) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(t.Title))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%s · %s", board, t.ID)))
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(styles.LabelStyle.Render(label+":") + " " + styles.ValueStyle.Render(value) + "\n")
	}
	field("Column", t.Column.OrDefault().Title())
	field("Priority", styles.RenderPriority(t.Priority))
	field("Category", t.Category)
	if t.DueDate != "" {
		field("Due", t.DueDate)
	}
	field("Created", t.Created().Format("2006-01-02 15:04"))

	if t.Description != "" {
		b.WriteString(styles.SectionStyle.Render("Description"))
		b.WriteString("\n")
		b.WriteString(renderMarkdown(t.Description, styles.CardWidth-6))
	}

	return styles.RenderCard(strings.TrimRight(b.String(), "\n"))
}

// renderMarkdown renders text with glamour, falling back to the raw text
func renderMarkdown(text string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
