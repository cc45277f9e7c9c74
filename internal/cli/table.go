package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var tableDim string

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show each dimension's units and base-unit factors",
	RunE:  runTable,
}

func init() {
	tableCmd.Flags().StringVar(&tableDim, "dim", "", "show only this dimension")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, _ []string) error {
	dims := dimensions
	if tableDim != "" {
		d, err := lookupDimension(tableDim)
		if err != nil {
			return err
		}
		dims = []dimSpec{d}
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")).
		Bold(true)
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	for _, d := range dims {
		cmd.Println(header.Render(d.Name))

		// The first unit is the base; its factor is 1 by construction.
		base := d.Units[0]
		for _, u := range d.Units {
			factor, err := d.Convert(1, u.Name, base.Name)
			if err != nil {
				return err
			}

			line := fmt.Sprintf("  %-12s (%s)\t= %g %s", u.Name, u.Symbol, factor, base.Symbol)
			if u.Name == base.Name {
				line += faint.Render("  base unit")
			}
			cmd.Println(line)
		}
		cmd.Println()
	}

	return nil
}
