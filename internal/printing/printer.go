package printing

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"coresheet/internal/config"
	"coresheet/internal/logging"
	"coresheet/internal/sheet"
)

// CommandRunner executes an external command. Swapped out in tests.
type CommandRunner func(ctx context.Context, name string, args []string) error

// Printer renders print artifacts and dispatches them to the configured
// print command.
type Printer struct {
	cfg    *config.Config
	logger *slog.Logger
	run    CommandRunner
}

// New builds a printer using the real command runner.
func New(cfg *config.Config, logger *slog.Logger) *Printer {
	return NewWithRunner(cfg, logger, runCommand)
}

// NewWithRunner builds a printer with a custom command runner.
func NewWithRunner(cfg *config.Config, logger *slog.Logger, run CommandRunner) *Printer {
	return &Printer{
		cfg:    cfg,
		logger: logging.WithComponent(logger, "printing"),
		run:    run,
	}
}

// Print writes the record as an A4 xlsx artifact and, when a print command
// is configured, hands the artifact path to it. Returns the artifact path.
// A failing print command is logged, not returned; only artifact rendering
// errors surface.
func (p *Printer) Print(ctx context.Context, record sheet.Record) (string, error) {
	if err := p.cfg.EnsureDirectories(); err != nil {
		return "", err
	}

	workbook, err := buildWorkbook(record, p.cfg.Print.SheetTitle)
	if err != nil {
		return "", fmt.Errorf("render sheet: %w", err)
	}
	defer workbook.Close()

	path := filepath.Join(p.cfg.Paths.OutputDir, fmt.Sprintf("core-sheet-%s.xlsx", uuid.NewString()))
	if err := workbook.SaveAs(path); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	p.logger.Info("rendered print artifact", logging.String(logging.FieldArtifact, path))

	if p.cfg.Print.Command != "" {
		if err := p.dispatch(ctx, path); err != nil {
			p.logger.Warn("print command failed",
				logging.String("command", p.cfg.Print.Command),
				logging.String(logging.FieldArtifact, path),
				logging.Error(err))
		}
	}
	return path, nil
}

func (p *Printer) dispatch(ctx context.Context, artifact string) error {
	parts := strings.Fields(p.cfg.Print.Command)
	if len(parts) == 0 {
		return nil
	}
	args := append(parts[1:], artifact)
	return p.run(ctx, parts[0], args)
}

func runCommand(ctx context.Context, name string, args []string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
