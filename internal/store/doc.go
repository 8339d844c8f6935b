// Package store persists the converter's per-user settings as pretty-printed
// JSON under ~/.docx_converter/. It handles first-run bootstrap of the
// directory and a default config.json, load/save of the full settings
// mapping, favorite-column updates, pre-save backups with rotation,
// quarantine of corrupt files, and health checks.
//
// Load never fails: any read or parse problem yields the default mapping so
// callers always hold usable settings. Save and bootstrap propagate their
// errors — a failed write must be visible, a failed read must not be.
package store
