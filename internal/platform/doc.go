// Package platform provides cross-platform filesystem helpers. Windows
// does not support Unix permission bits, so chmod calls are routed
// through here and become no-ops there.
package platform
