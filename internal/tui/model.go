package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"coresheet/internal/logging"
	"coresheet/internal/sheet"
	"coresheet/internal/textutil"
)

// PrintFunc invokes the external print pipeline for a validated record.
type PrintFunc func(ctx context.Context, record sheet.Record) error

// controllerState tracks the print flow. The controller always returns to
// idle; no persistent "printing" state exists.
type controllerState int

const (
	stateIdle controllerState = iota
	statePrintRequested
)

// Model is the bubbletea model for the worksheet form.
type Model struct {
	sheet  *sheet.Model
	print  PrintFunc
	logger *slog.Logger

	refs   []FieldRef
	inputs []textinput.Model
	focus  int

	state  controllerState
	status string
}

// New builds the form over an initialized sheet model.
func New(sheetModel *sheet.Model, print PrintFunc, logger *slog.Logger) Model {
	refs := fieldRefs()
	record := sheetModel.Record()

	inputs := make([]textinput.Model, len(refs))
	for i, ref := range refs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.SetValue(ref.value(record))
		switch ref.Kind {
		case FieldEpisodeFrom:
			ti.Width = 12
			ti.Placeholder = "when"
		case FieldEpisodeText:
			ti.Width = 84
			ti.Placeholder = "what happened"
		default:
			ti.Width = 40
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	m := Model{
		sheet:  sheetModel,
		print:  print,
		logger: logging.WithComponent(logger, "tui"),
		refs:   refs,
		inputs: inputs,
	}
	for i := range m.inputs {
		m.restyle(i)
	}
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// overLimit is the local per-field check backing the visual highlight. It is
// deliberately independent of the single violation Validate reports.
func (m Model) overLimit(i int) bool {
	return textutil.RuneCount(m.inputs[i].Value()) > m.refs[i].Limit()
}

// restyle reapplies the input's text style after an edit. Episode texts use
// the legibility tiers; everything else only switches on over-limit.
func (m *Model) restyle(i int) {
	ref := m.refs[i]
	if ref.Kind == FieldEpisodeText {
		m.inputs[i].TextStyle = episodeTierStyle(textutil.RuneCount(m.inputs[i].Value()))
		return
	}
	m.inputs[i].TextStyle = textutil.Ternary(m.overLimit(i), overLimitStyle, normalStyle)
}
