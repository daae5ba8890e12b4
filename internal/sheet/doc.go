// Package sheet holds the Personal Core Sheet record, its mutation model,
// and the validation rules that gate printing.
//
// The Record is a fixed-shape value: three visions, one engine slogan, three
// engines, and six episodes. Sequence lengths never change; mutators replace
// single elements in place and hand the full record to an onChange hook so
// the caller can persist every edit. Validation is a pure function that
// reports at most one violation, chosen by a fixed precedence so the user
// sees a single message at a time.
//
// All character limits count runes; no trimming or normalization is applied.
package sheet
