package models

import (
	"fmt"
	"strings"
)

// Window is a relative date range used to filter entries before aggregation.
type Window int

const (
	WindowAll Window = iota
	WindowLast7Days
	WindowLast30Days
)

// Days returns the lookback length of the window; 0 for WindowAll.
func (w Window) Days() int {
	switch w {
	case WindowLast7Days:
		return 7
	case WindowLast30Days:
		return 30
	default:
		return 0
	}
}

func (w Window) String() string {
	switch w {
	case WindowLast7Days:
		return "7d"
	case WindowLast30Days:
		return "30d"
	default:
		return "all"
	}
}

// ParseWindow resolves a CLI/config window name.
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "all-time":
		return WindowAll, nil
	case "7d", "7", "last-7-days", "week":
		return WindowLast7Days, nil
	case "30d", "30", "last-30-days", "month":
		return WindowLast30Days, nil
	}
	return WindowAll, fmt.Errorf("unknown window %q (use: all, 7d, 30d)", s)
}
