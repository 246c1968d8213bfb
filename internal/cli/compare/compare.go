// Package compare implements the "mapmerge compare" command.
package compare

import (
	"github.com/spf13/cobra"

	"github.com/mapmerge/mapmerge/internal/cli/helpers"
	"github.com/mapmerge/mapmerge/internal/definition"
	"github.com/mapmerge/mapmerge/internal/reconcile"
)

// New creates the compare command.
func New() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "compare <a.xml> <b.xml>",
		Short: "Reconcile two definitions into a categorized symbol table",
		Long: `Parse two definition files and reconcile them into one table.

Each row is classified green (identical placement in both versions),
yellow (present in both but moved, resized or renamed) or red (present
in one version only).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := helpers.Setup(cmd, "compare")
			if err != nil {
				return err
			}

			table, err := loadAndReconcile(args[0], args[1])
			if err != nil {
				return err
			}

			include, err := helpers.CategoryFilter(category)
			if err != nil {
				return err
			}

			rows := table.Rows(include)
			for _, e := range rows {
				cmd.Println(helpers.EntryLine(e))
			}
			cmd.Println(helpers.CountsLine(table.Counts()))

			logger.Info().
				Int("rows", len(rows)).
				Int("entries", table.Len()).
				Msg("reconciled")
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "show only one category (green, yellow, red)")
	return cmd
}

func loadAndReconcile(pathA, pathB string) (*reconcile.Table, error) {
	listA, err := definition.ParseFile(pathA)
	if err != nil {
		return nil, err
	}
	listB, err := definition.ParseFile(pathB)
	if err != nil {
		return nil, err
	}
	return reconcile.Reconcile(listA, listB), nil
}
