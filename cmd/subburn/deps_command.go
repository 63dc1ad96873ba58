package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"subburn/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of required external executables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			statuses := deps.CheckBinaries(deps.Required(cfg))
			fmt.Fprintln(cmd.OutOrStdout(), renderDepStatuses(statuses))
			for _, status := range statuses {
				if !status.Available {
					return errors.New("one or more required executables are missing")
				}
			}
			return nil
		},
	}
}
