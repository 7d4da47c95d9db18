// Package backup holds the export and import commands
package backup

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every board to a JSON file",
		Long: `Write the whole document (all boards and the current board) as
pretty-printed JSON. Use --output=- to write to stdout.

Examples:
  kanban export
  kanban export --output=backup.json
  kanban export --output=- | jq '.boards | keys'
`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", board.ExportFileName, "Destination file, or - for stdout")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd.Flags())
	output, _ := cmd.Flags().GetString("output")

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.HandleError(formatter, "INITIALIZATION_ERROR", err)
	}

	data, err := cliInstance.Store().Export()
	if err != nil {
		return cli.HandleError(formatter, "EXPORT_ERROR", err)
	}

	if output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return cli.HandleError(formatter, "EXPORT_ERROR", fmt.Errorf("failed to write %s: %w", output, err))
	}

	if formatter.Quiet {
		fmt.Println(output)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{
			"file":     output,
			"bytes":    len(data),
			"mimeType": board.ExportMIMEType,
		})
	}

	fmt.Printf("✓ Exported to %s\n", output)
	return nil
}

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace every board with an exported file",
		Long: `Replace the whole document with the contents of an export file.
The file must contain "boards" and "currentBoard"; otherwise nothing changes.
Use - to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())
	path := args[0]

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.HandleError(formatter, "INITIALIZATION_ERROR", err)
	}

	data, err := readInput(cmd, path)
	if err != nil {
		return cli.Report(formatter, "READ_ERROR", cli.ExitGeneral, "Import failed: "+err.Error(), "", err)
	}

	store := cliInstance.Store()
	if err := store.Import(ctx, data); err != nil {
		code, exit, suggestion := cli.Classify(err, "IMPORT_ERROR")
		return cli.Report(formatter, code, exit, "Import failed: "+err.Error(), suggestion, err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{
			"boards":       store.Boards(),
			"currentBoard": store.CurrentBoard(),
		})
	}

	fmt.Println("✓ Import successful")
	return nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
