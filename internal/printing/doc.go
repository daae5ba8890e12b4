// Package printing renders the worksheet record into a fixed A4 spreadsheet
// layout and hands it to the platform's print path.
//
// Print writes an .xlsx artifact with the page size and print area pinned so
// "print to PDF" from any spreadsheet tool reproduces the sheet, then
// optionally invokes a configured print command with the artifact path. The
// command invocation is fire-and-forget: its failure is logged, never
// surfaced.
//
// Callers are expected to validate the record first; printing itself applies
// no limits.
package printing
