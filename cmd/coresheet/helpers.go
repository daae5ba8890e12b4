package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"coresheet/internal/textutil"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("index must be a number, got %q", arg)
	}
	return index, nil
}

// fieldStatus formats a "used/limit" counter with an over-limit marker.
func fieldStatus(value string, limit int) string {
	count := textutil.RuneCount(value)
	return fmt.Sprintf("%d/%d%s", count, limit, textutil.Ternary(count > limit, " OVER", ""))
}

func colorize(writer io.Writer, color, text string) string {
	if !shouldColorize(writer) {
		return text
	}
	return color + text + ansiReset
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
