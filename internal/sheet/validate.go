package sheet

import (
	"fmt"
	"unicode/utf8"
)

// ViolationKind identifies which field group breached its limit.
type ViolationKind string

const (
	VisionTooLong      ViolationKind = "vision_too_long"
	SloganTooLong      ViolationKind = "slogan_too_long"
	EngineTooLong      ViolationKind = "engine_too_long"
	EpisodeTextTooLong ViolationKind = "episode_text_too_long"
	EpisodeFromTooLong ViolationKind = "episode_from_too_long"
)

// Violation reports the single highest-precedence limit breach in a record.
// The zero value means the record is valid.
type Violation struct {
	Kind  ViolationKind
	Index int // 0-based position within the field group; -1 for the slogan
	Limit int
}

// OK reports whether the record passed validation.
func (v Violation) OK() bool {
	return v.Kind == ""
}

// Message returns the user-facing description shown when printing is blocked.
func (v Violation) Message() string {
	switch v.Kind {
	case VisionTooLong:
		return fmt.Sprintf("Vision %d exceeds the %d character limit", v.Index+1, v.Limit)
	case SloganTooLong:
		return fmt.Sprintf("Engine slogan exceeds the %d character limit", v.Limit)
	case EngineTooLong:
		return fmt.Sprintf("Engine %d exceeds the %d character limit", v.Index+1, v.Limit)
	case EpisodeTextTooLong:
		return fmt.Sprintf("Episode %d text exceeds the %d character limit", v.Index+1, v.Limit)
	case EpisodeFromTooLong:
		return fmt.Sprintf("Episode %d \"from\" exceeds the %d character limit", v.Index+1, v.Limit)
	default:
		return ""
	}
}

// Validate checks every field against its limit and returns the first
// violation in precedence order: visions, slogan, engines, episode texts,
// episode "from" labels. Groups are scanned in index order, so the result is
// deterministic no matter how many fields are over limit at once.
func Validate(r Record) Violation {
	for i, vision := range r.Visions {
		if utf8.RuneCountInString(vision) > VisionLimit {
			return Violation{Kind: VisionTooLong, Index: i, Limit: VisionLimit}
		}
	}
	if utf8.RuneCountInString(r.EngineSlogan) > SloganLimit {
		return Violation{Kind: SloganTooLong, Index: -1, Limit: SloganLimit}
	}
	for i, engine := range r.Engines {
		if utf8.RuneCountInString(engine) > EngineLimit {
			return Violation{Kind: EngineTooLong, Index: i, Limit: EngineLimit}
		}
	}
	for i, episode := range r.Episodes {
		if utf8.RuneCountInString(episode.Text) > EpisodeTextLimit {
			return Violation{Kind: EpisodeTextTooLong, Index: i, Limit: EpisodeTextLimit}
		}
	}
	for i, episode := range r.Episodes {
		if utf8.RuneCountInString(episode.From) > EpisodeFromLimit {
			return Violation{Kind: EpisodeFromTooLong, Index: i, Limit: EpisodeFromLimit}
		}
	}
	return Violation{}
}
