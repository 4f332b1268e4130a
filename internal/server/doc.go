// Package server implements the MCP (Model Context Protocol) server for
// composing presentation backgrounds.
//
// This package provides a JSON-RPC 2.0 server that exposes the background
// operations through the MCP protocol, so an MCP client can open a background,
// paint its header and body regions and save the result.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Lifecycle:
//   - background_open: Open an image, returning a handle and its geometry
//   - background_close: Release a handle
//
// Drawing:
//   - background_filter: raw, blur, maxFilter or minFilter over a region
//   - background_overlay: Composite a blank sheet, a colour or a picture
//   - background_image: Paste a picture, clipped or whole
//
// Layout:
//   - background_margins: Toggle, set or query the include-margins flag
//   - background_dimensions: Size and origin of one region
//   - background_sample: Colour of one pixel as hex, RGBA and HSL
//   - background_regions: The full region table
//
// Output:
//   - background_preview: Base64 PNG of the working image, with guides
//   - background_save: Write the working image with the pbc- prefix
//   - background_save_to: Set the directory for later saves
//
// # Handles
//
// background_open returns a UUID handle. Every other tool except
// background_save_to takes it. Handles stay valid until background_close or
// until the server stops, at which point every open background is closed.
//
// # Diagnostics
//
// Background operations never fail on a bad region name, colour or picture;
// they substitute a fallback and report it. Each tool result carries the
// diagnostics its operation produced in a "diagnostics" array. The same events
// go to the server log.
//
// # Image Caching
//
// Backgrounds and pictures are loaded through a shared in-memory cache keyed by
// path, so a logo pasted onto many backgrounds is decoded once. Cached images
// are never drawn on.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.NewWithConfig(cfg, logging.NewLogger("backdrop-mcp"))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
