package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optipenn/uxaudit/internal/config"
)

var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Display current run configuration",
	Long:  `Shows the configuration resolved from environment variables, the .env file and the optional uxaudit.yaml overlay.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		fmt.Println(cfg.String())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showConfigCmd)
}
