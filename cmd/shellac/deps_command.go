package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shellac/internal/deps"
)

// newDepsCommand checks for the binaries the generated script will invoke.
// Generation itself needs none of them, so missing optional tools only warn.
func newDepsCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check for the external tools the generated script uses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Script Dependencies", colorize) {
				fmt.Fprintln(out, line)
			}

			missing := 0
			for _, status := range deps.CheckBinaries(deps.Requirements(cfg.Tools)) {
				kind := statusOK
				message := status.Description
				if !status.Available {
					if status.Optional {
						kind = statusWarn
					} else {
						kind = statusError
						missing++
					}
					message = status.Detail
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
			}

			if missing > 0 {
				return errors.New("required tools are missing; the generated script will fail at run time")
			}
			return nil
		},
	}
}
