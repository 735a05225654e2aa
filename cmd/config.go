package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"devicon/pkg/config"
	"devicon/pkg/ui"
)

var configInit bool

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the effective configuration as YAML, after defaults and the
config file (if any) have been applied.

Use --init to write a default .devicon.yaml into the current directory
as a starting point for customization.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "Write a default config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configInit {
		path := cfgFile
		if path == "" {
			path = config.DefaultFileName
		}

		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}

		fmt.Println(ui.FormatSuccess("Wrote default config: " + path))
		return nil
	}

	data, err := yaml.Marshal(appConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Print(string(data))
	return nil
}
