package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optipenn/uxaudit/internal/config"
	"github.com/optipenn/uxaudit/internal/scenario"
	"github.com/optipenn/uxaudit/pkg/interactive"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive mode",
	Long:  `Launches the interactive menu for running audits and inspecting configuration.`,
	Run: func(_ *cobra.Command, _ []string) {
		RunInteractive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// RunInteractive loops the main menu until the user exits. Also the default
// mode when the binary is invoked without arguments.
func RunInteractive() {
	fmt.Println("Optipenn UX Audit - Interactive Mode")
	fmt.Println("====================================")
	fmt.Println()

	for {
		options := []interactive.MenuOption{
			{
				Name:        "Run Full Audit",
				Description: "Run every scenario against the application",
				Action: func() error {
					if !interactive.Confirm("Start the full audit run?") {
						return nil
					}

					if _, err := executeRun(context.Background(), ""); err != nil {
						fmt.Printf("\nError: %v\n", err)
					}

					return nil
				},
			},
			{
				Name:        "Run Single Scenario",
				Description: "Pick one scenario to run on its own",
				Action: func() error {
					name, err := interactive.Choose("Which scenario?", scenario.Names())
					if err != nil {
						return nil
					}

					if _, err := executeRun(context.Background(), name); err != nil {
						fmt.Printf("\nError: %v\n", err)
					}

					return nil
				},
			},
			{
				Name:        "Show Config",
				Description: "Display the resolved run configuration",
				Action: func() error {
					cfg, err := config.Load()
					if err != nil {
						fmt.Printf("\nError: %v\n", err)

						return nil
					}

					fmt.Println()
					fmt.Println(cfg.String())
					fmt.Println()

					return nil
				},
			},
		}

		if err := interactive.ShowMenu(options); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Println("Goodbye!")

				return
			}

			fmt.Printf("\nError: %v\n", err)
		}
	}
}
