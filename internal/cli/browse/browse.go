// Package browse implements the interactive terminal browser for a
// reconciled symbol table.
package browse

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mapmerge/mapmerge/internal/cli/helpers"
	"github.com/mapmerge/mapmerge/internal/definition"
	"github.com/mapmerge/mapmerge/internal/reconcile"
	"github.com/mapmerge/mapmerge/internal/rom"
)

// New creates the browse command.
func New() *cobra.Command {
	var (
		binA, binB string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "browse <a.xml> <b.xml>",
		Short: "Interactively toggle entries and preview the grid",
		Long: `Open the reconciled table in a terminal browser.

Space toggles the selected entry; the toggle propagates to entries
sharing a start address in either version. Category keys filter the
view, 'v' shows the colored grid, and 'e' exports the merged image when
both binaries were loaded.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := helpers.Setup(cmd, "browse")
			if err != nil {
				return err
			}

			listA, err := definition.ParseFile(args[0])
			if err != nil {
				return err
			}
			listB, err := definition.ParseFile(args[1])
			if err != nil {
				return err
			}
			recon := reconcile.Reconcile(listA, listB)

			var imgA, imgB *rom.Image
			if binA != "" {
				if imgA, err = rom.Load(binA); err != nil {
					return err
				}
			}
			if binB != "" {
				if imgB, err = rom.Load(binB); err != nil {
					return err
				}
			}

			logger.Info().Int("entries", recon.Len()).Msg("starting browser")
			m := newModel(recon, imgA, imgB, out)
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&binA, "bin-a", "", "firmware image of version A (enables export)")
	cmd.Flags().StringVar(&binB, "bin-b", "", "firmware image of version B (enables export)")
	cmd.Flags().StringVar(&out, "out", "merged.bin", "output path for exported image")
	return cmd
}
