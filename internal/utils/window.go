package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseWindowDays parses a "days" query parameter, falling back to the
// default when absent. Zero or negative windows are rejected.
func ParseWindowDays(raw string, defaultDays int) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return defaultDays, nil
	}
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid window %q: %w", raw, err)
	}
	if days <= 0 {
		return 0, fmt.Errorf("window must be a positive number of days, got %d", days)
	}
	return days, nil
}

// ParseWindowList parses a comma-separated list of lookback windows, e.g.
// "7,30". Duplicates are dropped; order is preserved.
func ParseWindowList(raw string) ([]int, error) {
	seen := make(map[int]bool)
	var windows []int

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		days, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid window %q: %w", token, err)
		}
		if days <= 0 {
			return nil, fmt.Errorf("window must be a positive number of days, got %d", days)
		}
		if !seen[days] {
			seen[days] = true
			windows = append(windows, days)
		}
	}

	if len(windows) == 0 {
		return nil, fmt.Errorf("at least one window is required")
	}
	return windows, nil
}
