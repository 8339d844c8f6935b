// Package schema owns the settings file format: a JSON Schema for
// config.json and the supported format version. Validation is a
// diagnostic used by the doctor command — the store itself never
// validates, since malformed content is tolerated at load time by
// design.
package schema
