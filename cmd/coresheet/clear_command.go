package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset every field to empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSheet(cmd, func(runCtx context.Context, env sheetEnv) error {
				env.model.Reset()
				fmt.Fprintln(cmd.OutOrStdout(), "Sheet cleared")
				return nil
			})
		},
	}
}
