package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"coresheet/internal/sheet"
)

func newSetCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update a worksheet field",
	}

	cmd.AddCommand(newSetVisionCommand(ctx))
	cmd.AddCommand(newSetSloganCommand(ctx))
	cmd.AddCommand(newSetEngineCommand(ctx))
	cmd.AddCommand(newSetEpisodeCommand(ctx))

	return cmd
}

func newSetVisionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "vision <index> <text>",
		Short: "Replace one of the three visions (0-based index)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return ctx.withSheet(cmd, func(_ context.Context, env sheetEnv) error {
				if err := env.model.SetVision(index, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Vision %d saved (%s)\n", index+1, fieldStatus(args[1], sheet.VisionLimit))
				return nil
			})
		},
	}
}

func newSetSloganCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "slogan <text>",
		Short: "Replace the engine slogan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSheet(cmd, func(_ context.Context, env sheetEnv) error {
				env.model.SetEngineSlogan(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Engine slogan saved (%s)\n", fieldStatus(args[0], sheet.SloganLimit))
				return nil
			})
		},
	}
}

func newSetEngineCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "engine <index> <text>",
		Short: "Replace one of the three engine entries (0-based index)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return ctx.withSheet(cmd, func(_ context.Context, env sheetEnv) error {
				if err := env.model.SetEngine(index, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Engine %d saved (%s)\n", index+1, fieldStatus(args[1], sheet.EngineLimit))
				return nil
			})
		},
	}
}

func newSetEpisodeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "episode <index> <from|text> <value>",
		Short: "Replace one sub-field of an episode (0-based index)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			field, err := sheet.ParseEpisodeField(args[1])
			if err != nil {
				return err
			}
			return ctx.withSheet(cmd, func(_ context.Context, env sheetEnv) error {
				if err := env.model.SetEpisodeField(index, field, args[2]); err != nil {
					return err
				}
				limit := sheet.EpisodeTextLimit
				if field == sheet.EpisodeFrom {
					limit = sheet.EpisodeFromLimit
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Episode %d %s saved (%s)\n", index+1, field, fieldStatus(args[2], limit))
				return nil
			})
		},
	}
}
