package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gobwas/glob"
)

// HostAllowlist restricts navigation targets by URL host. Patterns are glob
// expressions matched case-insensitively against the host (without port).
// An empty allowlist permits every host.
type HostAllowlist struct {
	patterns []string
	globs    []glob.Glob
}

// NewHostAllowlist compiles the given glob patterns.
func NewHostAllowlist(patterns []string) (*HostAllowlist, error) {
	l := &HostAllowlist{patterns: patterns}
	for _, p := range patterns {
		g, err := glob.Compile(strings.ToLower(p), '.')
		if err != nil {
			return nil, fmt.Errorf("invalid allowed_hosts pattern %q: %w", p, err)
		}
		l.globs = append(l.globs, g)
	}
	return l, nil
}

// Empty reports whether the allowlist has no patterns (allow everything).
func (l *HostAllowlist) Empty() bool {
	return len(l.globs) == 0
}

// CheckURL parses rawURL and verifies its host against the allowlist.
// about:blank is always permitted.
func (l *HostAllowlist) CheckURL(rawURL string) error {
	if l.Empty() || rawURL == "about:blank" {
		return nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return fmt.Errorf("URL %q has no host", rawURL)
	}

	for _, g := range l.globs {
		if g.Match(host) {
			return nil
		}
	}
	return fmt.Errorf("host %q is not in the allowed_hosts list", host)
}
