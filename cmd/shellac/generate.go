package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"shellac/internal/logging"
	"shellac/internal/script"
	"shellac/internal/textutil"
	"shellac/internal/track"
)

func runGenerate(cmd *cobra.Command, cctx *commandContext, flags generateFlags) error {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	ctx := logging.WithRunID(cmd.Context())
	log := logging.WithContext(ctx, logger).With(slog.String("component", "generate"))

	paths, err := collectPaths(cmd, flags.sourceFlags)
	if err != nil {
		return err
	}
	tracks, err := track.Assign(paths, flags.offset)
	if err != nil {
		return err
	}

	table := textutil.DefaultTable().Merge(cfg.Transliterate.Substitutions)
	opts := script.Options{
		Tracks:         tracks,
		Transliterator: textutil.NewTransliterator(table),
		Tools:          cfg.Tools,
		Tags:           cfg.Tags,
		GainDB:         cfg.Script.GainDB,
		TempDir:        cfg.Script.TempDir,
		Version:        version,
	}
	if err := script.Assemble(cmd.OutOrStdout(), opts); err != nil {
		return err
	}

	log.Info("script generated",
		slog.Int("tracks", len(tracks)),
		slog.String("first", tracks[0].Number()),
		slog.String("last", tracks[len(tracks)-1].Number()))
	return nil
}
