package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"coresheet/internal/printing"
	"coresheet/internal/sheet"
	"coresheet/internal/tui"
)

func newEditCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the sheet interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSheet(cmd, func(runCtx context.Context, env sheetEnv) error {
				printer := printing.New(env.cfg, env.logger)
				printFn := func(pctx context.Context, record sheet.Record) error {
					_, err := printer.Print(pctx, record)
					return err
				}

				program := tea.NewProgram(
					tui.New(env.model, printFn, env.logger),
					tea.WithContext(runCtx),
					tea.WithOutput(cmd.OutOrStdout()),
				)
				if _, err := program.Run(); err != nil {
					return fmt.Errorf("run editor: %w", err)
				}
				return nil
			})
		},
	}
}
