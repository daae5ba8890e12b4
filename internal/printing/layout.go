package printing

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"coresheet/internal/sheet"
	"coresheet/internal/textutil"
)

// Fixed row positions of the A4 layout. The sheet shape never changes; only
// the values do.
const (
	rowTitle        = 1
	rowVisionHeader = 3
	rowVisionFirst  = 4
	rowEngineHeader = 8
	rowSlogan       = 9
	rowEngineFirst  = 10
	rowEpisodeHead  = 14
	rowEpisodeFirst = 15
	rowLast         = rowEpisodeFirst + sheet.EpisodeCount - 1
)

const (
	labelColumn = "A"
	valueColumn = "B"

	// Column widths in spreadsheet character units.
	labelColWidth    = 16
	minValueColWidth = 40
	maxValueColWidth = 96

	paperSizeA4 = 9
)

// valueColumnWidth sizes the value column to the widest entry, counting
// fullwidth runes as two cells, clamped to the A4-friendly range.
func valueColumnWidth(record sheet.Record) float64 {
	widest := 0
	track := func(value string) {
		if w := textutil.DisplayWidth(value); w > widest {
			widest = w
		}
	}
	for _, vision := range record.Visions {
		track(vision)
	}
	track(record.EngineSlogan)
	for _, engine := range record.Engines {
		track(engine)
	}
	for _, episode := range record.Episodes {
		track(episode.Text)
	}
	width := widest + 2
	if width < minValueColWidth {
		width = minValueColWidth
	}
	if width > maxValueColWidth {
		width = maxValueColWidth
	}
	return float64(width)
}

// buildWorkbook lays the record out on a single named sheet.
func buildWorkbook(record sheet.Record, title string) (*excelize.File, error) {
	f := excelize.NewFile()
	defaultName := f.GetSheetName(0)
	if err := f.SetSheetName(defaultName, title); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	if err := f.SetColWidth(title, labelColumn, labelColumn, labelColWidth); err != nil {
		return nil, fmt.Errorf("size label column: %w", err)
	}
	if err := f.SetColWidth(title, valueColumn, valueColumn, valueColumnWidth(record)); err != nil {
		return nil, fmt.Errorf("size value column: %w", err)
	}

	set := func(column string, row int, value string) error {
		return f.SetCellValue(title, fmt.Sprintf("%s%d", column, row), value)
	}

	if err := set(labelColumn, rowTitle, title); err != nil {
		return nil, err
	}

	if err := set(labelColumn, rowVisionHeader, "Vision"); err != nil {
		return nil, err
	}
	for i, vision := range record.Visions {
		row := rowVisionFirst + i
		if err := set(labelColumn, row, fmt.Sprintf("Vision %d", i+1)); err != nil {
			return nil, err
		}
		if err := set(valueColumn, row, vision); err != nil {
			return nil, err
		}
	}

	if err := set(labelColumn, rowEngineHeader, "Engine"); err != nil {
		return nil, err
	}
	if err := set(labelColumn, rowSlogan, "Slogan"); err != nil {
		return nil, err
	}
	if err := set(valueColumn, rowSlogan, record.EngineSlogan); err != nil {
		return nil, err
	}
	for i, engine := range record.Engines {
		row := rowEngineFirst + i
		if err := set(labelColumn, row, fmt.Sprintf("Engine %d", i+1)); err != nil {
			return nil, err
		}
		if err := set(valueColumn, row, engine); err != nil {
			return nil, err
		}
	}

	if err := set(labelColumn, rowEpisodeHead, "From"); err != nil {
		return nil, err
	}
	if err := set(valueColumn, rowEpisodeHead, "Episode"); err != nil {
		return nil, err
	}
	for i, episode := range record.Episodes {
		row := rowEpisodeFirst + i
		if err := set(labelColumn, row, episode.From); err != nil {
			return nil, err
		}
		if err := set(valueColumn, row, episode.Text); err != nil {
			return nil, err
		}
	}

	if err := applyPageSetup(f, title); err != nil {
		return nil, err
	}
	if err := applyStyles(f, title, record); err != nil {
		return nil, err
	}
	return f, nil
}

func applyPageSetup(f *excelize.File, title string) error {
	size := paperSizeA4
	orientation := "portrait"
	if err := f.SetPageLayout(title, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
	}); err != nil {
		return fmt.Errorf("page layout: %w", err)
	}

	area := fmt.Sprintf("'%s'!$%s$%d:$%s$%d", title, labelColumn, rowTitle, valueColumn, rowLast)
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: area,
		Scope:    title,
	}); err != nil {
		return fmt.Errorf("print area: %w", err)
	}
	return nil
}

func applyStyles(f *excelize.File, title string, record sheet.Record) error {
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return fmt.Errorf("title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	cell := func(column string, row int) string { return fmt.Sprintf("%s%d", column, row) }
	if err := f.SetCellStyle(title, cell(labelColumn, rowTitle), cell(labelColumn, rowTitle), titleStyle); err != nil {
		return err
	}
	for _, row := range []int{rowVisionHeader, rowEngineHeader, rowEpisodeHead} {
		if err := f.SetCellStyle(title, cell(labelColumn, row), cell(labelColumn, row), headerStyle); err != nil {
			return err
		}
	}

	// Long episode texts drop to a smaller font in two steps for legibility.
	// Both upper tiers intentionally render the same size.
	sizes := [3]float64{11, 9, 9}
	fonts := [3]int{}
	for tier, size := range sizes {
		id, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: size}})
		if err != nil {
			return fmt.Errorf("episode style: %w", err)
		}
		fonts[tier] = id
	}
	for i, episode := range record.Episodes {
		row := rowEpisodeFirst + i
		tier := EpisodeTextTier(textutil.RuneCount(episode.Text))
		if err := f.SetCellStyle(title, cell(valueColumn, row), cell(valueColumn, row), fonts[tier]); err != nil {
			return err
		}
	}
	return nil
}

// EpisodeTextTier maps an episode text length to its legibility tier:
// 0 for up to 40 runes, 1 for 41-80, 2 beyond. Tiers 1 and 2 render
// identically; the distinct thresholds are kept deliberately.
func EpisodeTextTier(runes int) int {
	switch {
	case runes <= 40:
		return 0
	case runes <= 80:
		return 1
	default:
		return 2
	}
}
