package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-jump/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Load the configuration the same way a game session does, apply the
difficulty preset, validate it and print the result as YAML.

Examples:
  jump config
  jump config --config ./my-jump.yaml --difficulty hard
  jump config --defaults > ~/.jump/configs/jump.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the embedded default config file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagConfigDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadJump(flagConfig)
	if err != nil {
		return err
	}
	if p := config.ParsePreset(flagDifficulty); p != "" {
		config.ApplyJumpPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("preset %s: %w", p, err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
