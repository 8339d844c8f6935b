// Package config manages CLI-level preferences stored at
// ~/.docx_converter/tool.yaml, such as the default output format and the
// backup retention count. These tune how the docxconv CLI behaves; the
// converter's own settings file (config.json) is owned by the store
// package.
package config
