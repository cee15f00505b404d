package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"shellac/internal/textutil"
	"shellac/internal/track"
)

// newTracksCommand previews the numbering and derived titles without
// emitting a script, so the operator can check ordering before a long run.
func newTracksCommand(cctx *commandContext) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "tracks",
		Short: "Preview track numbers and derived titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			paths, err := collectPaths(cmd, flags.sourceFlags)
			if err != nil {
				return err
			}
			tracks, err := track.Assign(paths, flags.offset)
			if err != nil {
				return err
			}
			tr := textutil.NewTransliterator(textutil.DefaultTable().Merge(cfg.Transliterate.Substitutions))
			fmt.Fprintln(cmd.OutOrStdout(), renderTrackTable(tracks, tr))
			return nil
		},
	}

	bindSourceFlags(cmd, &flags.sourceFlags)
	cmd.Flags().IntVarP(&flags.offset, "track-offset", "n", 1, "Number assigned to the first track")
	return cmd
}

func renderTrackTable(tracks []track.Track, tr *textutil.Transliterator) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Title", "Source"})
	for _, t := range tracks {
		title := tr.Transliterate(textutil.TitleFromPath(t.Path))
		tw.AppendRow(table.Row{t.Number(), title, t.Path})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
