package browser

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// Tab represents a single open page, identified by an opaque handle.
type Tab struct {
	// ID is the opaque handle reported to clients.
	ID string

	// Page is the underlying Playwright page.
	Page playwright.Page

	// CreatedAt is the timestamp when the tab was opened.
	CreatedAt time.Time
}

// TabInfo is the client-facing snapshot of a tab.
type TabInfo struct {
	Index   int
	ID      string
	URL     string
	Title   string
	Current bool
}

// Options configures the shared browser.
type Options struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool

	// InstallBrowsers runs the Playwright install step before launching.
	InstallBrowsers bool

	// ViewportWidth and ViewportHeight set the context viewport.
	ViewportWidth  int
	ViewportHeight int

	// DefaultTimeoutMs is the fallback timeout for element operations.
	DefaultTimeoutMs float64

	// NavigationTimeoutMs bounds page loads.
	NavigationTimeoutMs float64

	// MaxTabs caps the number of simultaneously open tabs.
	MaxTabs int
}

// Valid enum values accepted by the wait and navigation tools.
var (
	validWaitStates = map[string]bool{
		"attached": true,
		"detached": true,
		"visible":  true,
		"hidden":   true,
	}

	validLoadStates = map[string]bool{
		"load":             true,
		"domcontentloaded": true,
		"networkidle":      true,
	}

	validMouseButtons = map[string]bool{
		"left":   true,
		"right":  true,
		"middle": true,
	}
)

// maxTimeoutMs caps per-call timeouts at five minutes.
const maxTimeoutMs = 300000.0

// defaultWaitTimeoutMs is the wait_for_selector default, matching the
// longer bound used for explicit waits.
const defaultWaitTimeoutMs = 30000.0

// maxScreenshotBytes is the size above which inline screenshots are not
// base64-encoded into the result string.
const maxScreenshotBytes = 5 * 1024 * 1024
