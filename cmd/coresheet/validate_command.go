package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every field against its character limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSheet(cmd, func(_ context.Context, env sheetEnv) error {
				if v := env.model.Validate(); !v.OK() {
					return errors.New(v.Message())
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, colorize(out, ansiGreen, "Sheet is valid"))
				return nil
			})
		},
	}
}
