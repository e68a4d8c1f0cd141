package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chicken-road/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.chicken-road/configs/chicken.yaml or ./configs/chicken.yaml
and edit any keys; missing keys keep their defaults.

Example:
  chicken config > ~/.chicken-road/configs/chicken.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = os.Stdout.Write(config.GetDefaultYAML())
	},
}
