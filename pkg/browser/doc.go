// Package browser owns the shared Playwright browser and the MCP tools that
// operate on it.
//
// # Architecture
//
// The package is built around two core concepts:
//
// 1. Manager: the single browser process, its isolation context, and the
// ordered set of open tabs, exactly one of which is current
// 2. Tools: one type per MCP operation, each validating its arguments and
// forwarding to the corresponding Playwright call
//
// # Lifecycle
//
// The browser starts lazily: the first tool call that needs a page installs
// and launches Playwright, creates one context, and opens the first tab.
// Tabs are destroyed only by an explicit browser_close_tab call, and the
// last tab can never be closed; the browser process itself lives until the
// server shuts down.
//
// # Error handling
//
// Every operation failure is caught at the tool boundary and flattened into
// a descriptive string for the calling assistant. Timeouts are passed
// through to Playwright in milliseconds and are the only cancellation bound.
package browser
