package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"devicon/internal/adapters/imagestore"
	"devicon/internal/core/services"
	"devicon/pkg/badge"
	"devicon/pkg/config"
	"devicon/pkg/ui"
)

var (
	cfgFile string

	// App config
	appConfig *config.Config

	// Services
	generateService *services.GenerateService
)

// rootCmd represents the base command. Running devicon without a
// subcommand performs the batch generate, so the tool works with no
// arguments at all.
var rootCmd = &cobra.Command{
	Use:   "devicon",
	Short: "Generate dev-badged browser extension icons",
	Long: ui.StyleTitle.Render("devicon") + " - Dev Icon Generator\n\n" +
		"Overlays a translucent badge triangle and label onto the extension's\n" +
		"production icons and writes the results to a dev output directory,\n" +
		"so development builds are visually distinct in the browser toolbar.",
	PersistentPreRunE: initializeApp,
	RunE:              runGenerate,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(ui.FormatError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default .devicon.yaml)")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultFileName
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg

	ui.SetTheme(cfg.ColorTheme)

	// Initialize adapters
	store := imagestore.New()
	renderer := badge.NewRenderer(cfg.BadgeStyle())

	// Initialize services
	generateService = services.NewGenerateService(store, renderer)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
