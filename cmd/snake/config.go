package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would start with, after the
config file search and the --difficulty flag are applied.

Examples:
  snake config
  snake config --config ./my-snake.yaml
  snake config > ~/.snake/config.yaml
  snake config --defaults    # Annotated built-in default file`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the annotated built-in default file instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runPresets(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-8s  %-7s  %s\n", "Preset", "Ticks/s", "Description")
	fmt.Fprintf(out, "  %-8s  %-7s  %s\n", "------", "-------", "-----------")
	for _, p := range config.Presets() {
		fmt.Fprintf(out, "  %-8s  %-7d  %s\n", p.Name, p.TickRate, p.Description)
	}
	return nil
}
