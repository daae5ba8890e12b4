package tui

import (
	"fmt"

	"coresheet/internal/sheet"
)

// FieldKind identifies which record field group an input edits.
type FieldKind int

const (
	FieldVision FieldKind = iota
	FieldSlogan
	FieldEngine
	FieldEpisodeFrom
	FieldEpisodeText
)

// FieldRef points one form input at one record field.
type FieldRef struct {
	Kind  FieldKind
	Index int
}

// Limit returns the field's own character limit in runes.
func (r FieldRef) Limit() int {
	switch r.Kind {
	case FieldVision:
		return sheet.VisionLimit
	case FieldSlogan:
		return sheet.SloganLimit
	case FieldEngine:
		return sheet.EngineLimit
	case FieldEpisodeFrom:
		return sheet.EpisodeFromLimit
	default:
		return sheet.EpisodeTextLimit
	}
}

// Label returns the form label for the field.
func (r FieldRef) Label() string {
	switch r.Kind {
	case FieldVision:
		return fmt.Sprintf("Vision %d", r.Index+1)
	case FieldSlogan:
		return "Engine slogan"
	case FieldEngine:
		return fmt.Sprintf("Engine %d", r.Index+1)
	case FieldEpisodeFrom:
		return fmt.Sprintf("Episode %d from", r.Index+1)
	default:
		return fmt.Sprintf("Episode %d", r.Index+1)
	}
}

// value extracts the field's current value from a record.
func (r FieldRef) value(record sheet.Record) string {
	switch r.Kind {
	case FieldVision:
		return record.Visions[r.Index]
	case FieldSlogan:
		return record.EngineSlogan
	case FieldEngine:
		return record.Engines[r.Index]
	case FieldEpisodeFrom:
		return record.Episodes[r.Index].From
	default:
		return record.Episodes[r.Index].Text
	}
}

// fieldRefs lists every form input in display order: visions, slogan,
// engines, then the six episodes as from/text pairs.
func fieldRefs() []FieldRef {
	refs := make([]FieldRef, 0, sheet.VisionCount+1+sheet.EngineCount+2*sheet.EpisodeCount)
	for i := 0; i < sheet.VisionCount; i++ {
		refs = append(refs, FieldRef{Kind: FieldVision, Index: i})
	}
	refs = append(refs, FieldRef{Kind: FieldSlogan})
	for i := 0; i < sheet.EngineCount; i++ {
		refs = append(refs, FieldRef{Kind: FieldEngine, Index: i})
	}
	for i := 0; i < sheet.EpisodeCount; i++ {
		refs = append(refs, FieldRef{Kind: FieldEpisodeFrom, Index: i})
		refs = append(refs, FieldRef{Kind: FieldEpisodeText, Index: i})
	}
	return refs
}
