package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"coresheet/internal/textutil"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Width(18)
	counterStyle = lipgloss.NewStyle().Faint(true)
	normalStyle  = lipgloss.NewStyle()
	// overLimitStyle flags a field exceeding its own limit, independent of
	// the global validation result.
	overLimitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	condensedStyle = lipgloss.NewStyle().Faint(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

// episodeTierStyle maps an episode text length to its rendered style.
// Thresholds sit at 40 and 80 runes; the two upper tiers deliberately render
// the same.
func episodeTierStyle(runes int) lipgloss.Style {
	switch {
	case runes <= 40:
		return normalStyle
	case runes <= 80:
		return condensedStyle
	default:
		return condensedStyle
	}
}

// View renders the full form with section headers, per-field counters, and
// the status bar.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Personal Core Sheet"))
	b.WriteString("\n\n")

	lastKind := FieldKind(-1)
	for i, ref := range m.refs {
		if header := sectionHeader(ref.Kind, lastKind); header != "" {
			b.WriteString(sectionStyle.Render(header))
			b.WriteByte('\n')
		}
		lastKind = ref.Kind

		label := labelStyle.Render(ref.Label())
		if m.overLimit(i) {
			label = overLimitStyle.Render(ref.Label() + strings.Repeat(" ", max(0, 18-textutil.DisplayWidth(ref.Label()))))
		}
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		b.WriteByte(' ')
		b.WriteString(m.counter(i))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render("tab/shift+tab: move · ctrl+p: print · esc: quit"))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) counter(i int) string {
	count := textutil.RuneCount(m.inputs[i].Value())
	text := fmt.Sprintf("%d/%d", count, m.refs[i].Limit())
	if m.overLimit(i) {
		return overLimitStyle.Render(text)
	}
	return counterStyle.Render(text)
}

func sectionHeader(kind, last FieldKind) string {
	if kind == last {
		return ""
	}
	switch kind {
	case FieldVision:
		return "Vision"
	case FieldSlogan:
		return "Engine"
	case FieldEpisodeFrom:
		if last == FieldEngine || last == FieldSlogan {
			return "Episodes"
		}
	}
	return ""
}
