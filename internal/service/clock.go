package service

import (
	"fmt"
	"strconv"
	"strings"
)

// parseClock splits an "HH:MM" string into hour and minute.
func parseClock(s string) (int, int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("parse clock %q: missing ':'", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return hour, minute, nil
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// joinList renders a string list for the single-value columns of
// habit_adjustments and habit_history.
func joinList(items []string) string {
	return strings.Join(items, ", ")
}
