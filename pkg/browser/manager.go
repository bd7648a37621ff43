package browser

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/entrhq/surf/pkg/config"
)

// Manager owns the single shared browser process, its isolation context,
// and the ordered set of open tabs. At most one browser instance is alive
// per server process, and exactly one tab is current at any moment.
type Manager struct {
	mu        sync.Mutex
	opts      Options
	allowlist *config.HostAllowlist
	logger    logrus.FieldLogger

	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	tabs    []*Tab
	current *Tab
	started bool
	closed  bool
}

// NewManager creates a manager. The browser is not launched until the first
// operation that needs a page.
func NewManager(opts Options, allowlist *config.HostAllowlist, logger logrus.FieldLogger) *Manager {
	if opts.ViewportWidth <= 0 {
		opts.ViewportWidth = config.DefaultViewportWidth
	}
	if opts.ViewportHeight <= 0 {
		opts.ViewportHeight = config.DefaultViewportHeight
	}
	if opts.DefaultTimeoutMs <= 0 {
		opts.DefaultTimeoutMs = config.DefaultTimeoutMs
	}
	if opts.NavigationTimeoutMs <= 0 {
		opts.NavigationTimeoutMs = config.DefaultNavigationTimeoutMs
	}
	if opts.MaxTabs < 1 {
		opts.MaxTabs = config.DefaultMaxTabs
	}
	if allowlist == nil {
		allowlist, _ = config.NewHostAllowlist(nil)
	}
	return &Manager{
		opts:      opts,
		allowlist: allowlist,
		logger:    logger,
	}
}

// ensureStartedLocked launches Playwright, the browser, the context, and the
// first tab. Callers must hold m.mu.
func (m *Manager) ensureStartedLocked() error {
	if m.closed {
		return fmt.Errorf("browser manager is shut down")
	}
	if m.started {
		return nil
	}

	// Driver output is discarded: stdout belongs to the MCP transport.
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if m.opts.InstallBrowsers {
		if err := playwright.Install(runOpts); err != nil {
			return fmt.Errorf("failed to install playwright: %w", err)
		}
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(m.opts.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  m.opts.ViewportWidth,
			Height: m.opts.ViewportHeight,
		},
	})
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return fmt.Errorf("failed to create context: %w", err)
	}

	m.pw = pw
	m.browser = browser
	m.context = context
	m.started = true

	tab, err := m.openTabLocked()
	if err != nil {
		m.shutdownLocked()
		return err
	}
	m.current = tab

	m.logger.WithFields(logrus.Fields{
		"headless": m.opts.Headless,
		"viewport": fmt.Sprintf("%dx%d", m.opts.ViewportWidth, m.opts.ViewportHeight),
	}).Info("browser started")
	return nil
}

// openTabLocked creates a page and appends it to the tab set. Callers must
// hold m.mu with the browser started.
func (m *Manager) openTabLocked() (*Tab, error) {
	if len(m.tabs) >= m.opts.MaxTabs {
		return nil, fmt.Errorf("maximum number of tabs (%d) reached", m.opts.MaxTabs)
	}

	page, err := m.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(m.opts.DefaultTimeoutMs)

	tab := &Tab{
		ID:        uuid.NewString(),
		Page:      page,
		CreatedAt: time.Now(),
	}
	m.tabs = append(m.tabs, tab)
	return tab, nil
}

// Started reports whether the browser has been launched.
func (m *Manager) Started() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started
}

// CurrentTab returns the current tab, launching the browser on first use.
func (m *Manager) CurrentTab() (*Tab, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureStartedLocked(); err != nil {
		return nil, err
	}
	if m.current == nil {
		return nil, fmt.Errorf("no active tab")
	}
	return m.current, nil
}

// NewTab opens a tab and makes it current. When url is non-empty the tab
// navigates there before returning.
func (m *Manager) NewTab(url string) (*Tab, error) {
	m.mu.Lock()

	if err := m.ensureStartedLocked(); err != nil {
		m.mu.Unlock()
		return nil, err
	}

	tab, err := m.openTabLocked()
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}
	m.current = tab
	m.mu.Unlock()

	if url != "" {
		if _, err := m.Navigate(url, "", 0); err != nil {
			return tab, fmt.Errorf("tab opened but navigation failed: %w", err)
		}
	}
	return tab, nil
}

// CloseTab closes the current tab and promotes the most recently opened
// remaining tab. Closing the last tab is refused: the browser process stays
// alive until explicit shutdown.
func (m *Manager) CloseTab() (TabInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || len(m.tabs) == 0 {
		return TabInfo{}, fmt.Errorf("no active tab to close")
	}
	if len(m.tabs) == 1 {
		return TabInfo{}, fmt.Errorf("cannot close the last tab")
	}

	closing := m.current
	if err := closing.Page.Close(); err != nil {
		m.logger.WithError(err).Warn("error closing page")
	}

	kept := m.tabs[:0]
	for _, t := range m.tabs {
		if t != closing {
			kept = append(kept, t)
		}
	}
	m.tabs = kept
	m.current = m.tabs[len(m.tabs)-1]

	return m.tabInfoLocked(m.current), nil
}

// SelectTab makes the tab identified by ref current. ref is either an
// opaque tab handle or a zero-based index into the tab set.
func (m *Manager) SelectTab(ref string) (TabInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.tabs) == 0 {
		return TabInfo{}, fmt.Errorf("no open tabs")
	}

	for _, t := range m.tabs {
		if t.ID == ref {
			m.current = t
			return m.tabInfoLocked(t), nil
		}
	}

	index, err := strconv.Atoi(ref)
	if err != nil {
		return TabInfo{}, fmt.Errorf("no tab with handle or index %q", ref)
	}
	if index < 0 || index >= len(m.tabs) {
		return TabInfo{}, fmt.Errorf("tab index %d out of range (0-%d)", index, len(m.tabs)-1)
	}

	m.current = m.tabs[index]
	return m.tabInfoLocked(m.current), nil
}

// Tabs returns a snapshot of all open tabs in creation order.
func (m *Manager) Tabs() []TabInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	infos := make([]TabInfo, 0, len(m.tabs))
	for _, t := range m.tabs {
		infos = append(infos, m.tabInfoLocked(t))
	}
	return infos
}

// tabInfoLocked builds the client-facing view of a tab. Callers must hold m.mu.
func (m *Manager) tabInfoLocked(tab *Tab) TabInfo {
	info := TabInfo{
		ID:      tab.ID,
		Current: tab == m.current,
		Index:   -1,
	}
	for i, t := range m.tabs {
		if t == tab {
			info.Index = i
			break
		}
	}
	info.URL = tab.Page.URL()
	if title, err := tab.Page.Title(); err == nil {
		info.Title = title
	}
	return info
}

// Shutdown closes every tab, the context, the browser, and the Playwright
// driver. Safe to call more than once.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shutdownLocked()
}

func (m *Manager) shutdownLocked() error {
	if m.closed {
		return nil
	}
	m.closed = true

	if !m.started {
		return nil
	}

	var errs []error
	for _, t := range m.tabs {
		if err := t.Page.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	m.tabs = nil
	m.current = nil

	if m.context != nil {
		if err := m.context.Close(); err != nil {
			errs = append(errs, err)
		}
		m.context = nil
	}
	if m.browser != nil {
		if err := m.browser.Close(); err != nil {
			errs = append(errs, err)
		}
		m.browser = nil
	}
	if m.pw != nil {
		if err := m.pw.Stop(); err != nil {
			errs = append(errs, err)
		}
		m.pw = nil
	}
	m.started = false

	if len(errs) > 0 {
		return fmt.Errorf("errors during browser shutdown: %v", errs)
	}
	m.logger.Info("browser stopped")
	return nil
}
