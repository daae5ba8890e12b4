package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"coresheet/internal/config"
	"coresheet/internal/printing"
)

func newPrintCommand(ctx *commandContext) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Validate the sheet and render it for printing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSheet(cmd, func(runCtx context.Context, env sheetEnv) error {
				if v := env.model.Validate(); !v.OK() {
					return errors.New(v.Message())
				}

				cfg := env.cfg
				if outputDir != "" {
					expanded, err := config.ExpandPath(outputDir)
					if err != nil {
						return err
					}
					override := *cfg
					override.Paths.OutputDir = expanded
					cfg = &override
				}

				printer := printing.New(cfg, env.logger)
				artifact, err := printer.Print(runCtx, env.model.Record())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Rendered print artifact: %s\n", artifact)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory to write the artifact into")
	return cmd
}
