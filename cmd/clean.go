package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"devicon/pkg/ui"
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated dev icons",
	Long: `Remove the generated dev-badged icons from the destination directory.

Only the configured icon filenames are removed; anything else in the
destination directory is left alone.`,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	fmt.Print(ui.StyleWarning.Render("Cleaning dev icons... "))

	removed := 0
	for _, name := range appConfig.Icons {
		path := filepath.Join(appConfig.DestDir, name)
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			fmt.Println(ui.FormatError("Failed"))
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
		removed++
	}

	fmt.Println(ui.FormatSuccess("Done"))
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d dev icon(s) removed.", removed)))
	return nil
}
