// Package inspect implements the "mapmerge inspect" command.
package inspect

import (
	"github.com/spf13/cobra"

	"github.com/mapmerge/mapmerge/internal/cli/helpers"
	"github.com/mapmerge/mapmerge/internal/definition"
)

// New creates the inspect command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <definition.xml>",
		Short: "List the symbols a definition file declares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := helpers.Setup(cmd, "inspect")
			if err != nil {
				return err
			}

			descs, err := definition.ParseFile(args[0])
			if err != nil {
				return err
			}
			logger.Info().Str("file", args[0]).Int("symbols", len(descs)).Msg("definition parsed")

			for _, d := range descs {
				cmd.Printf("%s-%s %6d  %s\n",
					helpers.FormatAddr(d.Start), helpers.FormatAddr(d.End), d.Size, d.Title)
			}
			cmd.Printf("%d symbols\n", len(descs))
			return nil
		},
	}
}
