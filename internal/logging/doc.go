// Package logging provides the key/value logger and the diagnostic events used
// by background operations.
//
// Operations never abort on recoverable input problems. Instead they emit a
// Diagnostic describing what was done (KindInfo) or what was substituted
// (KindWarning). A Logger renders diagnostics as log lines; a Recorder keeps
// them for inspection by tests and by the MCP server, which returns them with
// each tool result.
package logging
