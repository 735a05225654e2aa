package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"devicon/internal/core/services"
	"devicon/pkg/ui"
)

var watchQuiet bool

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate dev icons whenever the production icons change",
	Long: `Watch the source directory and regenerate the dev-badged icons
whenever one of the configured production icons is created or modified.

An initial generate runs immediately, then changes are debounced so a
burst of writes (e.g. an export tool saving all sizes) triggers a single
regeneration.

Use --quiet to suppress per-icon output.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress per-icon output")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	srcDir := appConfig.SourceDir
	destDir := appConfig.DestDir

	// Names we care about; everything else in the directory is ignored
	watched := make(map[string]bool, len(appConfig.Icons))
	for _, name := range appConfig.Icons {
		watched[name] = true
	}

	regenerate := func() {
		req := services.GenerateRequest{
			SourceDir: srcDir,
			DestDir:   destDir,
			Icons:     appConfig.Icons,
		}
		if !watchQuiet {
			req.Progress = printIconResult
		}

		summary, err := generateService.Execute(ctx, req)
		if err != nil {
			fmt.Println(ui.FormatError("Regeneration failed: " + err.Error()))
			return
		}

		if !watchQuiet {
			fmt.Println(ui.FormatSuccess(fmt.Sprintf("Generated %d/%d dev icons",
				summary.Succeeded, summary.Total)))
			fmt.Println()
		}
	}

	// Initial run before watching
	fmt.Println(ui.FormatTitle("Dev Icon Generator") + ui.FormatMuted(" (watch mode)"))
	fmt.Println()
	regenerate()

	// Create file watcher
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(srcDir); err != nil {
		return fmt.Errorf("failed to watch source directory: %w", err)
	}

	fmt.Println(ui.FormatMuted("Watching: " + srcDir))
	fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
	fmt.Println()

	// Debounce timer to avoid regenerating on every write in a burst
	var debounceTimer *time.Timer
	debounceDuration := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !watched[filepath.Base(event.Name)] {
				continue
			}

			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename) {
				if !watchQuiet {
					fmt.Println(ui.FormatInfo("Change detected: " + filepath.Base(event.Name)))
				}

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, regenerate)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println(ui.FormatWarning("Watcher error: " + err.Error()))
		}
	}
}
