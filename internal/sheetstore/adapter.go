package sheetstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"coresheet/internal/logging"
	"coresheet/internal/sheet"
)

// StorageKey is the fixed identifier the worksheet record is stored under.
const StorageKey = "personal-core-sheet"

// Adapter serializes the worksheet record to and from a Backend. Read and
// parse failures degrade to absent; write failures are logged and swallowed
// so in-memory state stays authoritative.
type Adapter struct {
	backend Backend
	logger  *slog.Logger
}

// NewAdapter wraps a backend. logger may be nil.
func NewAdapter(backend Backend, logger *slog.Logger) *Adapter {
	return &Adapter{
		backend: backend,
		logger:  logging.WithComponent(logger, "sheetstore"),
	}
}

// Load reads the persisted record. The second return value is false when the
// key is unset, the blob is unparseable, or the parsed value fails the shape
// check; callers fall back to the default record in that case.
func (a *Adapter) Load(ctx context.Context) (sheet.Record, bool) {
	blob, ok, err := a.backend.Get(ctx, StorageKey)
	if err != nil {
		a.logger.Warn("read persisted sheet", logging.String(logging.FieldKey, StorageKey), logging.Error(err))
		return sheet.NewRecord(), false
	}
	if !ok {
		return sheet.NewRecord(), false
	}

	record, err := decodeRecord(blob)
	if err != nil {
		a.logger.Warn("decode persisted sheet", logging.String(logging.FieldKey, StorageKey), logging.Error(err))
		return sheet.NewRecord(), false
	}
	return record, true
}

// Save serializes the full record and overwrites the persisted blob. Any
// failure is logged; the caller is never interrupted.
func (a *Adapter) Save(ctx context.Context, record sheet.Record) {
	blob, err := json.Marshal(record)
	if err != nil {
		a.logger.Error("encode sheet", logging.Error(err))
		return
	}
	if err := a.backend.Set(ctx, StorageKey, string(blob)); err != nil {
		a.logger.Warn("persist sheet", logging.String(logging.FieldKey, StorageKey), logging.Error(err))
	}
}

// decodeRecord parses a blob and verifies the structural shape before
// decoding: all four top-level keys must be present with the right container
// kinds. Sequence lengths beyond the fixed shape are discarded by the array
// decode; shorter ones leave the remainder empty.
func decodeRecord(blob string) (sheet.Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return sheet.Record{}, fmt.Errorf("parse blob: %w", err)
	}

	for _, key := range []string{"visions", "engineSlogan", "engines", "episodes"} {
		if _, ok := raw[key]; !ok {
			return sheet.Record{}, fmt.Errorf("missing key %q", key)
		}
	}
	for _, key := range []string{"visions", "engines", "episodes"} {
		var probe []json.RawMessage
		if err := json.Unmarshal(raw[key], &probe); err != nil {
			return sheet.Record{}, fmt.Errorf("%s is not a sequence", key)
		}
	}
	var slogan string
	if err := json.Unmarshal(raw["engineSlogan"], &slogan); err != nil {
		return sheet.Record{}, fmt.Errorf("engineSlogan is not a string")
	}

	var record sheet.Record
	if err := json.Unmarshal([]byte(blob), &record); err != nil {
		return sheet.Record{}, fmt.Errorf("decode record: %w", err)
	}
	return record, nil
}
