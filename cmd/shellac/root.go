package main

import (
	"github.com/spf13/cobra"
)

const version = "1.0.0"

func newRootCommand() *cobra.Command {
	var configFlag string
	var gen generateFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "shellac",
		Short: "Generate batch scripts that digitize albums to tagged MP3s",
		Long: `Shellac turns an ordered list of audio files into a self-contained
bash script. Running that script decodes each file, normalizes it, and
either concatenates the tracks into one stream or encodes each one to a
tagged MP3. The script is written to standard output; logs go to
standard error.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, ctx, gen)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	bindSourceFlags(rootCmd, &gen.sourceFlags)
	rootCmd.Flags().IntVarP(&gen.offset, "track-offset", "n", 1, "Number assigned to the first track")

	rootCmd.AddCommand(newTracksCommand(ctx))
	rootCmd.AddCommand(newDepsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
