package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/monster-arena/internal/config"
)

var (
	flagConfigFormat string
	flagDefaults     bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective arena config",
	Long: `Print the arena configuration after applying --config and
--difficulty. Save the output to ~/.arena/configs/arena.yaml to make it
the default, then edit the values you want to change.

Examples:
  arena config
  arena config --difficulty hard
  arena config --format toml > my-arena.toml
  arena config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file as shipped")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadArena(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))

	switch flagConfigFormat {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(cfg)
	case "toml":
		return toml.NewEncoder(os.Stdout).Encode(cfg)
	default:
		return fmt.Errorf("unknown format %q (use yaml or toml)", flagConfigFormat)
	}
}
