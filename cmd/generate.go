package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"devicon/internal/core/domain"
	"devicon/internal/core/services"
	"devicon/pkg/ui"
)

var (
	generateSrc  string
	generateDest string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:     "generate",
	Short:   "Generate dev-badged icons from the production set",
	Aliases: []string{"gen", "g"},
	Long: `Generate dev-badged variants of the extension's production icons.

Each configured icon is loaded from the source directory, composited with
the badge triangle and label, and written under the destination directory
with the same filename. The source icons are never modified.

A missing source icon is skipped with a warning; any other per-icon
failure is reported and the batch continues. Only a missing source
directory aborts the run.

Examples:
  devicon                      # same as 'devicon generate'
  devicon generate
  devicon generate --src assets/icons --dest assets/icons/dev`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateSrc, "src", "", "Override the source directory")
	generateCmd.Flags().StringVar(&generateDest, "dest", "", "Override the destination directory")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	srcDir := appConfig.SourceDir
	if generateSrc != "" {
		srcDir = generateSrc
	}
	destDir := appConfig.DestDir
	if generateDest != "" {
		destDir = generateDest
	}

	fmt.Println(ui.FormatTitle("Dev Icon Generator"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Destination", destDir))
	fmt.Println()

	req := services.GenerateRequest{
		SourceDir: srcDir,
		DestDir:   destDir,
		Icons:     appConfig.Icons,
		Progress:  printIconResult,
	}

	summary, err := generateService.Execute(ctx, req)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Done! Generated %d/%d dev icons",
		summary.Succeeded, summary.Total)))

	// Per-icon failures don't fail the run; the tally told the story
	return nil
}

// printIconResult prints one progress line per processed icon
func printIconResult(result domain.IconResult) {
	switch result.Status {
	case domain.StatusGenerated:
		if result.FontFallback {
			fmt.Println(ui.FormatWarning("No system font found, using embedded font"))
		}
		fmt.Println(ui.FormatSuccess("Created: " + result.OutputPath))
	case domain.StatusSkipped:
		fmt.Println(ui.FormatWarning("Skipped: " + result.Name + " (file not found)"))
	case domain.StatusFailed:
		fmt.Println(ui.FormatError("Error: " + result.Name + " - " + result.Err.Error()))
	}
}
