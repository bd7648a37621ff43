package browser

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// timeoutOrDefault resolves a per-call timeout against the configured
// fallback, in milliseconds.
func (m *Manager) timeoutOrDefault(timeoutMs float64) float64 {
	if timeoutMs > 0 {
		return timeoutMs
	}
	return m.opts.DefaultTimeoutMs
}

// Navigate loads url in the current tab and returns the HTTP status of the
// main document response, or 0 when the navigation produced none.
func (m *Manager) Navigate(url, waitUntil string, timeoutMs float64) (int, error) {
	if err := m.allowlist.CheckURL(url); err != nil {
		return 0, err
	}

	tab, err := m.CurrentTab()
	if err != nil {
		return 0, err
	}

	opts := playwright.PageGotoOptions{}
	if waitUntil != "" {
		state := playwright.WaitUntilState(waitUntil)
		opts.WaitUntil = &state
	}
	timeout := timeoutMs
	if timeout <= 0 {
		timeout = m.opts.NavigationTimeoutMs
	}
	opts.Timeout = playwright.Float(timeout)

	resp, err := tab.Page.Goto(url, opts)
	if err != nil {
		return 0, fmt.Errorf("navigation failed: %w", err)
	}
	if resp == nil {
		return 0, nil
	}
	return resp.Status(), nil
}

// Click clicks the element matching selector after waiting for it to become
// visible.
func (m *Manager) Click(selector, button string, clickCount int, timeoutMs float64) error {
	tab, err := m.CurrentTab()
	if err != nil {
		return err
	}
	timeout := m.timeoutOrDefault(timeoutMs)

	state := playwright.WaitForSelectorState("visible")
	if _, err := tab.Page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		State:   &state,
		Timeout: playwright.Float(timeout),
	}); err != nil {
		return fmt.Errorf("element not visible: %w", err)
	}

	opts := playwright.PageClickOptions{Timeout: playwright.Float(timeout)}
	if button != "" {
		b := playwright.MouseButton(button)
		opts.Button = &b
	}
	if clickCount > 1 {
		opts.ClickCount = playwright.Int(clickCount)
	}

	if err := tab.Page.Click(selector, opts); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	return nil
}

// TypeText clears the element matching selector and fills it with text.
func (m *Manager) TypeText(selector, text string, timeoutMs float64) error {
	tab, err := m.CurrentTab()
	if err != nil {
		return err
	}
	timeout := m.timeoutOrDefault(timeoutMs)

	state := playwright.WaitForSelectorState("visible")
	if _, err := tab.Page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		State:   &state,
		Timeout: playwright.Float(timeout),
	}); err != nil {
		return fmt.Errorf("element not visible: %w", err)
	}

	// Fill replaces existing content, which covers the clear step.
	if err := tab.Page.Fill(selector, text, playwright.PageFillOptions{
		Timeout: playwright.Float(timeout),
	}); err != nil {
		return fmt.Errorf("fill failed: %w", err)
	}
	return nil
}

// SelectOption selects the option with the given value in a dropdown.
func (m *Manager) SelectOption(selector, value string, timeoutMs float64) error {
	tab, err := m.CurrentTab()
	if err != nil {
		return err
	}

	_, err = tab.Page.SelectOption(selector, playwright.SelectOptionValues{
		Values: &[]string{value},
	}, playwright.PageSelectOptionOptions{
		Timeout: playwright.Float(m.timeoutOrDefault(timeoutMs)),
	})
	if err != nil {
		return fmt.Errorf("select failed: %w", err)
	}
	return nil
}

// GetText returns the text content of the first element matching selector.
// When the single-element wait fails, it falls back to joining the text of
// every match with " | ".
func (m *Manager) GetText(selector string, timeoutMs float64) (string, error) {
	tab, err := m.CurrentTab()
	if err != nil {
		return "", err
	}

	element, err := tab.Page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(m.timeoutOrDefault(timeoutMs)),
	})
	if err == nil && element != nil {
		text, textErr := element.TextContent()
		if textErr != nil {
			return "", fmt.Errorf("text extraction failed: %w", textErr)
		}
		return text, nil
	}

	elements, allErr := tab.Page.QuerySelectorAll(selector)
	if allErr != nil || len(elements) == 0 {
		return "", fmt.Errorf("failed to get text from %s: %w", selector, err)
	}
	var texts []string
	for _, el := range elements {
		if text, textErr := el.TextContent(); textErr == nil && strings.TrimSpace(text) != "" {
			texts = append(texts, strings.TrimSpace(text))
		}
	}
	return strings.Join(texts, " | "), nil
}

// GetAttribute returns the value of attribute on the first element matching
// selector. A missing attribute yields an empty string.
func (m *Manager) GetAttribute(selector, attribute string, timeoutMs float64) (string, error) {
	tab, err := m.CurrentTab()
	if err != nil {
		return "", err
	}

	element, err := tab.Page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(m.timeoutOrDefault(timeoutMs)),
	})
	if err != nil {
		return "", fmt.Errorf("element not found: %w", err)
	}
	if element == nil {
		return "", fmt.Errorf("no element found matching selector: %s", selector)
	}

	value, err := element.GetAttribute(attribute)
	if err != nil {
		return "", fmt.Errorf("attribute read failed: %w", err)
	}
	return value, nil
}

// Screenshot captures the current page. With a path the image is written to
// disk; without one a truncated base64 preview is returned, unless the
// capture exceeds the inline size cap.
func (m *Manager) Screenshot(path string, fullPage bool) (string, error) {
	tab, err := m.CurrentTab()
	if err != nil {
		return "", err
	}

	opts := playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(fullPage),
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", fmt.Errorf("failed to create screenshot directory: %w", err)
		}
		opts.Path = playwright.String(path)
	}

	data, err := tab.Page.Screenshot(opts)
	if err != nil {
		return "", fmt.Errorf("screenshot failed: %w", err)
	}

	if path != "" {
		return fmt.Sprintf("Screenshot saved to: %s", path), nil
	}

	sizeMB := float64(len(data)) / (1024 * 1024)
	if len(data) > maxScreenshotBytes {
		return fmt.Sprintf("Screenshot taken (size: %.1fMB - pass a 'path' to save large screenshots to a file)", sizeMB), nil
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	if len(encoded) > 100 {
		encoded = encoded[:100] + "..."
	}
	return fmt.Sprintf("Screenshot taken (base64, size: %.1fMB): %s", sizeMB, encoded), nil
}

// WaitForSelector waits for the element matching selector to reach state.
func (m *Manager) WaitForSelector(selector, state string, timeoutMs float64) error {
	tab, err := m.CurrentTab()
	if err != nil {
		return err
	}

	timeout := timeoutMs
	if timeout <= 0 {
		timeout = defaultWaitTimeoutMs
	}

	selectorState := playwright.WaitForSelectorState(state)
	if _, err := tab.Page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		State:   &selectorState,
		Timeout: playwright.Float(timeout),
	}); err != nil {
		return fmt.Errorf("wait failed: %w", err)
	}
	return nil
}

// WaitForLoadState waits for the page to reach the given load state.
func (m *Manager) WaitForLoadState(state string) error {
	tab, err := m.CurrentTab()
	if err != nil {
		return err
	}

	loadState := playwright.LoadState(state)
	if err := tab.Page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: &loadState,
	}); err != nil {
		return fmt.Errorf("wait for load state failed: %w", err)
	}
	return nil
}

// Evaluate runs script in the page and returns the result formatted as
// JSON, or "undefined" for a nil result.
func (m *Manager) Evaluate(script string) (string, error) {
	tab, err := m.CurrentTab()
	if err != nil {
		return "", err
	}

	result, err := tab.Page.Evaluate(script)
	if err != nil {
		return "", fmt.Errorf("script evaluation failed: %w", err)
	}
	if result == nil {
		return "undefined", nil
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("%v", result), nil
	}
	return string(encoded), nil
}

// URL returns the current tab's URL.
func (m *Manager) URL() (string, error) {
	tab, err := m.CurrentTab()
	if err != nil {
		return "", err
	}
	return tab.Page.URL(), nil
}

// Title returns the current tab's document title.
func (m *Manager) Title() (string, error) {
	tab, err := m.CurrentTab()
	if err != nil {
		return "", err
	}
	title, err := tab.Page.Title()
	if err != nil {
		return "", fmt.Errorf("failed to read title: %w", err)
	}
	return title, nil
}

// GoBack navigates the current tab back in history.
func (m *Manager) GoBack() error {
	tab, err := m.CurrentTab()
	if err != nil {
		return err
	}
	if _, err := tab.Page.GoBack(); err != nil {
		return fmt.Errorf("go back failed: %w", err)
	}
	return nil
}

// GoForward navigates the current tab forward in history.
func (m *Manager) GoForward() error {
	tab, err := m.CurrentTab()
	if err != nil {
		return err
	}
	if _, err := tab.Page.GoForward(); err != nil {
		return fmt.Errorf("go forward failed: %w", err)
	}
	return nil
}

// Reload reloads the current tab.
func (m *Manager) Reload() error {
	tab, err := m.CurrentTab()
	if err != nil {
		return err
	}
	if _, err := tab.Page.Reload(); err != nil {
		return fmt.Errorf("reload failed: %w", err)
	}
	return nil
}

// SetChecked checks or unchecks the checkbox matching selector.
func (m *Manager) SetChecked(selector string, checked bool, timeoutMs float64) error {
	tab, err := m.CurrentTab()
	if err != nil {
		return err
	}
	timeout := playwright.Float(m.timeoutOrDefault(timeoutMs))

	if checked {
		if err := tab.Page.Check(selector, playwright.PageCheckOptions{Timeout: timeout}); err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		return nil
	}
	if err := tab.Page.Uncheck(selector, playwright.PageUncheckOptions{Timeout: timeout}); err != nil {
		return fmt.Errorf("uncheck failed: %w", err)
	}
	return nil
}

// Hover hovers over the element matching selector.
func (m *Manager) Hover(selector string, timeoutMs float64) error {
	tab, err := m.CurrentTab()
	if err != nil {
		return err
	}
	if err := tab.Page.Hover(selector, playwright.PageHoverOptions{
		Timeout: playwright.Float(m.timeoutOrDefault(timeoutMs)),
	}); err != nil {
		return fmt.Errorf("hover failed: %w", err)
	}
	return nil
}

// ScrollTo scrolls the element matching selector into view.
func (m *Manager) ScrollTo(selector string, timeoutMs float64) error {
	tab, err := m.CurrentTab()
	if err != nil {
		return err
	}

	element, err := tab.Page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(m.timeoutOrDefault(timeoutMs)),
	})
	if err != nil {
		return fmt.Errorf("element not found: %w", err)
	}
	if element == nil {
		return fmt.Errorf("no element found matching selector: %s", selector)
	}
	if err := element.ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("scroll failed: %w", err)
	}
	return nil
}

// FieldResult records the outcome of filling one form field.
type FieldResult struct {
	Selector string
	Err      error
}

// FillForm fills each selector with its value, in deterministic selector
// order, then optionally clicks submitSelector. Per-field failures do not
// stop the remaining fields.
func (m *Manager) FillForm(fields map[string]string, submitSelector string, timeoutMs float64) ([]FieldResult, error) {
	tab, err := m.CurrentTab()
	if err != nil {
		return nil, err
	}
	timeout := playwright.Float(m.timeoutOrDefault(timeoutMs))

	selectors := make([]string, 0, len(fields))
	for selector := range fields {
		selectors = append(selectors, selector)
	}
	sort.Strings(selectors)

	results := make([]FieldResult, 0, len(selectors)+1)
	for _, selector := range selectors {
		fillErr := tab.Page.Fill(selector, fields[selector], playwright.PageFillOptions{Timeout: timeout})
		results = append(results, FieldResult{Selector: selector, Err: fillErr})
	}

	if submitSelector != "" {
		submitErr := tab.Page.Click(submitSelector, playwright.PageClickOptions{Timeout: timeout})
		results = append(results, FieldResult{Selector: submitSelector, Err: submitErr})
	}
	return results, nil
}

// PageLink is one anchor extracted by Links.
type PageLink struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Links returns up to limit links from the current page.
func (m *Manager) Links(limit int) ([]PageLink, error) {
	tab, err := m.CurrentTab()
	if err != nil {
		return nil, err
	}

	script := fmt.Sprintf(`() => {
		const links = Array.from(document.querySelectorAll('a[href]'));
		return links.slice(0, %d).map(link => ({
			text: link.textContent.trim() || '[No text]',
			href: link.href,
		}));
	}`, limit)

	result, err := tab.Page.Evaluate(script)
	if err != nil {
		return nil, fmt.Errorf("link extraction failed: %w", err)
	}

	// Round-trip through JSON to turn the generic evaluate result into
	// typed links.
	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to decode links: %w", err)
	}
	var links []PageLink
	if err := json.Unmarshal(encoded, &links); err != nil {
		return nil, fmt.Errorf("failed to decode links: %w", err)
	}
	return links, nil
}
