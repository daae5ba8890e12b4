package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"coresheet/internal/logging"
	"coresheet/internal/sheet"
)

type printRecorder struct {
	calls int
	last  sheet.Record
	err   error
}

func (p *printRecorder) print(_ context.Context, record sheet.Record) error {
	p.calls++
	p.last = record
	return p.err
}

func newTestModel(t *testing.T, record sheet.Record, printer *printRecorder) (Model, *int) {
	t.Helper()
	persists := 0
	sheetModel := sheet.NewModel(record, func(sheet.Record) { persists++ })
	return New(sheetModel, printer.print, logging.NewNop()), &persists
}

func typeRunes(m Model, text string) Model {
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func press(m Model, key tea.KeyType) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: key})
	return updated.(Model)
}

func TestTypingEditsAndPersists(t *testing.T) {
	printer := &printRecorder{}
	m, persists := newTestModel(t, sheet.NewRecord(), printer)

	m = typeRunes(m, "ab")
	record := m.sheet.Record()
	if record.Visions[0] != "ab" {
		t.Fatalf("expected first vision edited, got %+v", record.Visions)
	}
	if *persists != 2 {
		t.Fatalf("expected one persistence per keystroke, got %d", *persists)
	}
}

func TestFocusMovesThroughAllFields(t *testing.T) {
	printer := &printRecorder{}
	m, _ := newTestModel(t, sheet.NewRecord(), printer)

	// Three tabs land on the slogan, one more on the first engine.
	for i := 0; i < 3; i++ {
		m = press(m, tea.KeyTab)
	}
	m = typeRunes(m, "slogan!")
	if m.sheet.Record().EngineSlogan != "slogan!" {
		t.Fatalf("expected slogan edited, got %q", m.sheet.Record().EngineSlogan)
	}

	// Wrap all the way around back to the first vision.
	for i := 0; i < len(m.refs)-3; i++ {
		m = press(m, tea.KeyTab)
	}
	m = typeRunes(m, "v1")
	if m.sheet.Record().Visions[0] != "v1" {
		t.Fatalf("expected wrap-around to first vision, got %+v", m.sheet.Record().Visions)
	}
}

func TestPrintValidRecordInvokesPipelineOnce(t *testing.T) {
	printer := &printRecorder{}
	record := sheet.NewRecord()
	m, _ := newTestModel(t, record, printer)

	m = typeRunes(m, "挑戦し続ける")
	m = press(m, tea.KeyCtrlP)

	if printer.calls != 1 {
		t.Fatalf("expected exactly one print invocation, got %d", printer.calls)
	}
	if printer.last.Visions[0] != "挑戦し続ける" {
		t.Fatalf("pipeline received stale record: %+v", printer.last)
	}
	if m.state != stateIdle {
		t.Fatal("controller must return to idle after printing")
	}
	if !strings.Contains(m.status, "print pipeline") {
		t.Fatalf("unexpected status: %q", m.status)
	}
}

func TestPrintBlockedByViolation(t *testing.T) {
	printer := &printRecorder{}
	record := sheet.NewRecord()
	record.EngineSlogan = strings.Repeat("x", 31)
	m, _ := newTestModel(t, record, printer)

	m = press(m, tea.KeyCtrlP)

	if printer.calls != 0 {
		t.Fatalf("print pipeline must not run on violation, got %d calls", printer.calls)
	}
	if m.status != "Engine slogan exceeds the 30 character limit" {
		t.Fatalf("unexpected status: %q", m.status)
	}
	if m.state != stateIdle {
		t.Fatal("controller must stay idle after a blocked print")
	}
}

func TestPrintFailureSurfacesInStatus(t *testing.T) {
	printer := &printRecorder{err: errors.New("spooler offline")}
	m, _ := newTestModel(t, sheet.NewRecord(), printer)

	m = press(m, tea.KeyCtrlP)
	if !strings.Contains(m.status, "spooler offline") {
		t.Fatalf("unexpected status: %q", m.status)
	}
	if m.state != stateIdle {
		t.Fatal("controller must return to idle after a failed print")
	}
}

func TestOverLimitIsPerField(t *testing.T) {
	printer := &printRecorder{}
	record := sheet.NewRecord()
	record.Visions[1] = strings.Repeat("a", 31)
	record.Episodes[0].From = strings.Repeat("b", 9)
	m, _ := newTestModel(t, record, printer)

	// Both fields flag locally even though Validate reports only the vision.
	if !m.overLimit(1) {
		t.Fatal("vision 2 should flag over limit")
	}
	fromIndex := -1
	for i, ref := range m.refs {
		if ref.Kind == FieldEpisodeFrom && ref.Index == 0 {
			fromIndex = i
		}
	}
	if !m.overLimit(fromIndex) {
		t.Fatal("episode 1 from should flag over limit")
	}
	if m.overLimit(0) {
		t.Fatal("empty vision should not flag")
	}
	if v := sheet.Validate(record); v.Kind != sheet.VisionTooLong {
		t.Fatalf("global validation should still report the vision, got %+v", v)
	}
}

func TestEpisodeTierStyleBands(t *testing.T) {
	if episodeTierStyle(40).GetFaint() {
		t.Fatal("short text should render normal")
	}
	if !episodeTierStyle(41).GetFaint() || !episodeTierStyle(81).GetFaint() {
		t.Fatal("both upper bands should render condensed")
	}
	// The two upper bands intentionally collapse to the same style.
	if episodeTierStyle(41).GetFaint() != episodeTierStyle(200).GetFaint() {
		t.Fatal("upper bands must render identically")
	}
}

func TestViewShowsCountersAndStatus(t *testing.T) {
	printer := &printRecorder{}
	record := sheet.NewRecord()
	record.Visions[0] = "hello"
	m, _ := newTestModel(t, record, printer)
	m.status = "Sheet sent to the print pipeline"

	view := m.View()
	if !strings.Contains(view, "Personal Core Sheet") {
		t.Fatal("missing title")
	}
	if !strings.Contains(view, "5/30") {
		t.Fatal("missing rune counter")
	}
	if !strings.Contains(view, "Sheet sent to the print pipeline") {
		t.Fatal("missing status line")
	}
}
