package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/optipenn/uxaudit/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the available audit scenarios",
	Long:  `Shows each scenario name and what it checks, in execution order.`,
	Run: func(_ *cobra.Command, _ []string) {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Name", "Title", "Description"})
		table.SetBorder(false)
		table.SetAutoWrapText(false)

		for _, sc := range scenario.Registry() {
			table.Append([]string{sc.Name, sc.Title, sc.Description})
		}

		table.Render()
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}
