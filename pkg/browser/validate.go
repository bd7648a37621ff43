package browser

import "fmt"

// validateTimeout checks an optional per-call timeout. A nil timeout means
// "use the configured default" and comes back as zero.
func validateTimeout(timeout *float64) (float64, error) {
	if timeout == nil {
		return 0, nil
	}
	if *timeout < 0 || *timeout > maxTimeoutMs {
		return 0, fmt.Errorf("timeout must be between 0 and %.0f milliseconds", maxTimeoutMs)
	}
	return *timeout, nil
}
