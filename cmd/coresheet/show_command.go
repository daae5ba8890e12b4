package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"coresheet/internal/sheet"
	"coresheet/internal/textutil"
)

const showValueWidth = 48

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the worksheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSheet(cmd, func(_ context.Context, env sheetEnv) error {
				record := env.model.Record()
				out := cmd.OutOrStdout()

				if asJSON {
					payload, err := json.MarshalIndent(record, "", "  ")
					if err != nil {
						return fmt.Errorf("encode record: %w", err)
					}
					fmt.Fprintln(out, string(payload))
					return nil
				}

				rows := make([][]string, 0, 16)
				appendRow := func(label, value string, limit int) {
					rows = append(rows, []string{
						label,
						textutil.ClipRunes(value, showValueWidth),
						fieldStatus(value, limit),
					})
				}
				for i, vision := range record.Visions {
					appendRow(fmt.Sprintf("Vision %d", i+1), vision, sheet.VisionLimit)
				}
				appendRow("Engine slogan", record.EngineSlogan, sheet.SloganLimit)
				for i, engine := range record.Engines {
					appendRow(fmt.Sprintf("Engine %d", i+1), engine, sheet.EngineLimit)
				}
				for i, episode := range record.Episodes {
					appendRow(fmt.Sprintf("Episode %d from", i+1), episode.From, sheet.EpisodeFromLimit)
					appendRow(fmt.Sprintf("Episode %d text", i+1), episode.Text, sheet.EpisodeTextLimit)
				}

				fmt.Fprintln(out, renderTable([]string{"Field", "Value", "Length"}, rows))

				if v := sheet.Validate(record); v.OK() {
					fmt.Fprintln(out, colorize(out, ansiGreen, "Sheet is ready to print"))
				} else {
					fmt.Fprintln(out, colorize(out, ansiRed, v.Message()))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the record as JSON")
	return cmd
}
