// Package merge implements the "mapmerge merge" command.
package merge

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mapmerge/mapmerge/internal/cli/helpers"
	"github.com/mapmerge/mapmerge/internal/definition"
	coremerge "github.com/mapmerge/mapmerge/internal/merge"
	"github.com/mapmerge/mapmerge/internal/reconcile"
	"github.com/mapmerge/mapmerge/internal/rom"
)

// New creates the merge command.
func New() *cobra.Command {
	var (
		binA, binB, out  string
		selectPolicy     string
		checks, unchecks []string
	)

	cmd := &cobra.Command{
		Use:   "merge <a.xml> <b.xml> --bin-a <a.bin> --bin-b <b.bin> --out <merged.bin>",
		Short: "Export a merged firmware image",
		Long: `Reconcile two definitions, select entries, and write a merged image.

The output starts as a copy of image B; every checked entry whose symbol
is equally sized in both versions has its bytes copied over from image A.
Entries with differing sizes are never merged, checked or not.

Selection starts from the --select policy (default from config), then
--check / --uncheck toggle individual titles. Toggles propagate to
entries sharing a start address, the same linkage the browser applies.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := helpers.Setup(cmd, "merge")
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
			table := reconcile.Reconcile(listA, listB)

			if selectPolicy == "" {
				selectPolicy = cfg.Merge.Select
			}
			policy, err := reconcile.ParseSelection(selectPolicy)
			if err != nil {
				return err
			}
			table.Select(policy)

			for _, title := range checks {
				if table.Get(title) == nil {
					return fmt.Errorf("no such entry %q", title)
				}
				table.Propagate(title, true)
			}
			for _, title := range unchecks {
				if table.Get(title) == nil {
					return fmt.Errorf("no such entry %q", title)
				}
				table.Propagate(title, false)
			}

			imgA, err := rom.Load(binA)
			if err != nil {
				return err
			}
			imgB, err := rom.Load(binB)
			if err != nil {
				return err
			}
			logger.Debug().
				Str("hash_a", imgA.HashString()).
				Str("hash_b", imgB.HashString()).
				Msg("images loaded")

			merged, report, err := coremerge.Export(imgA, imgB, table)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, merged, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			logger.Info().
				Int("copied", report.Copied).
				Int("skipped", report.Skipped).
				Str("hash_out", rom.New(merged).HashString()).
				Str("out", out).
				Msg("merged image written")
			cmd.Printf("merged %d entries (%d skipped) into %s\n", report.Copied, report.Skipped, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&binA, "bin-a", "", "firmware image of version A")
	cmd.Flags().StringVar(&binB, "bin-b", "", "firmware image of version B")
	cmd.Flags().StringVar(&out, "out", "", "output path for the merged image")
	cmd.Flags().StringVar(&selectPolicy, "select", "", "bulk selection policy (matched, green, yellow, all-linked, none)")
	cmd.Flags().StringArrayVar(&checks, "check", nil, "check one entry by title (repeatable)")
	cmd.Flags().StringArrayVar(&unchecks, "uncheck", nil, "uncheck one entry by title (repeatable)")
	_ = cmd.MarkFlagRequired("bin-a")
	_ = cmd.MarkFlagRequired("bin-b")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
