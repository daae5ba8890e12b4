// Package tui renders the worksheet as an interactive terminal form.
//
// Every keystroke flows through the sheet model's mutators, so each edit is
// persisted immediately. Fields over their own character limit are
// highlighted individually; that highlighting is a local per-field check and
// is independent of the single violation Validate reports. Printing is a
// two-step Idle/PrintRequested controller: the print key runs validation
// and either surfaces one blocking message or fires the print pipeline once
// before returning to idle.
package tui
