package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"coresheet/internal/logging"
	"coresheet/internal/sheet"
)

// Update handles key events: focus movement, printing, and field edits.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardToFocused(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down", "enter":
		m.moveFocus(1)
		return m, textinput.Blink
	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, textinput.Blink
	case "ctrl+p":
		m.requestPrint()
		return m, nil
	default:
		return m.forwardToFocused(msg)
	}
}

func (m Model) forwardToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.applyEdit(m.focus)
	m.restyle(m.focus)
	return m, cmd
}

func (m *Model) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// applyEdit pushes the input's current value through the sheet model, which
// persists the full record.
func (m *Model) applyEdit(i int) {
	ref := m.refs[i]
	value := m.inputs[i].Value()
	if ref.value(m.sheet.Record()) == value {
		return
	}

	var err error
	switch ref.Kind {
	case FieldVision:
		err = m.sheet.SetVision(ref.Index, value)
	case FieldSlogan:
		m.sheet.SetEngineSlogan(value)
	case FieldEngine:
		err = m.sheet.SetEngine(ref.Index, value)
	case FieldEpisodeFrom:
		err = m.sheet.SetEpisodeField(ref.Index, sheet.EpisodeFrom, value)
	case FieldEpisodeText:
		err = m.sheet.SetEpisodeField(ref.Index, sheet.EpisodeText, value)
	}
	if err != nil {
		m.logger.Error("apply edit", logging.Error(err))
	}
}

// requestPrint runs the Idle -> PrintRequested -> Idle flow: validate, then
// either surface the single blocking violation or fire the pipeline once.
func (m *Model) requestPrint() {
	m.state = statePrintRequested
	defer func() { m.state = stateIdle }()

	if v := m.sheet.Validate(); !v.OK() {
		m.status = v.Message()
		return
	}
	if err := m.print(context.Background(), m.sheet.Record()); err != nil {
		m.logger.Error("print pipeline", logging.Error(err))
		m.status = "Print failed: " + err.Error()
		return
	}
	m.status = "Sheet sent to the print pipeline"
}
