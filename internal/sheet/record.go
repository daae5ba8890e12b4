package sheet

// Fixed sequence lengths for the worksheet record.
const (
	VisionCount  = 3
	EngineCount  = 3
	EpisodeCount = 6
)

// Per-field character limits, counted in runes.
const (
	VisionLimit      = 30
	SloganLimit      = 30
	EngineLimit      = 30
	EpisodeTextLimit = 80
	EpisodeFromLimit = 8
)

// Episode is one entry in the episode section: a short "from" label naming
// the period the story comes from, and the story text itself.
type Episode struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// Record is the single persisted worksheet entity. The array types pin the
// sequence lengths for the lifetime of the record; elements are replaced,
// never inserted or removed.
type Record struct {
	Visions      [VisionCount]string   `json:"visions"`
	EngineSlogan string                `json:"engineSlogan"`
	Engines      [EngineCount]string   `json:"engines"`
	Episodes     [EpisodeCount]Episode `json:"episodes"`
}

// NewRecord returns the all-empty default record.
func NewRecord() Record {
	return Record{}
}
