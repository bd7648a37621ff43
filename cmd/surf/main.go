// Package main is the surf MCP server binary. It speaks JSON-RPC over
// stdio and exposes browser automation tools backed by Playwright.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
