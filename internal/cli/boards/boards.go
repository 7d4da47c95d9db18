package boards

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(SwitchCmd())

	return cmd
}

type boardSummary struct {
	Name    string `json:"name"`
	Tasks   int    `json:"tasks"`
	Current bool   `json:"current"`
}

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List boards",
		Long:  "List all boards. The current board is marked with *.",
		RunE:  runList,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd.Flags())

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.HandleError(formatter, "INITIALIZATION_ERROR", err)
	}

	doc := cliInstance.Store().Document()
	summaries := make([]boardSummary, 0, len(doc.Boards))
	for _, name := range doc.BoardNames() {
		summaries = append(summaries, boardSummary{
			Name:    name,
			Tasks:   len(doc.Boards[name]),
			Current: name == doc.CurrentBoard,
		})
	}

	if formatter.Quiet {
		for _, s := range summaries {
			fmt.Println(s.Name)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{
			"boards":       summaries,
			"currentBoard": doc.CurrentBoard,
		})
	}

	fmt.Printf("Found %d boards:\n\n", len(summaries))
	for _, s := range summaries {
		marker := " "
		name := s.Name
		if s.Current {
			marker = "*"
			name = styles.TitleStyle.Render(name)
		}
		fmt.Printf("%s %s %s\n", marker, name, styles.SubtitleStyle.Render(fmt.Sprintf("(%d tasks)", s.Tasks)))
	}
	return nil
}

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a board and switch to it",
		Long: `Create an empty board and make it current. Names are case-sensitive
and must be unique.

Examples:
  kanban board create "Side project"
  kanban board create Work --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())
	name := args[0]

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.HandleError(formatter, "INITIALIZATION_ERROR", err)
	}

	if err := cliInstance.Store().CreateBoard(ctx, name); err != nil {
		return cli.HandleError(formatter, "BOARD_CREATE_ERROR", err)
	}

	if formatter.Quiet {
		fmt.Println(name)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"board": name})
	}

	fmt.Printf("✓ Board '%s' created and selected\n", name)
	return nil
}

// SwitchCmd returns the board switch subcommand
func SwitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "switch <name>",
		Aliases: []string{"use"},
		Short:   "Make a board current",
		Args:    cobra.ExactArgs(1),
		RunE:    runSwitch,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runSwitch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())
	name := args[0]

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.HandleError(formatter, "INITIALIZATION_ERROR", err)
	}

	if err := cliInstance.Store().SwitchBoard(ctx, name); err != nil {
		return cli.HandleError(formatter, "BOARD_SWITCH_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"currentBoard": name})
	}

	fmt.Printf("✓ Switched to board '%s'\n", name)
	return nil
}
