package domain

import (
	"strconv"
	"strings"
)

// Activity is one logged training session.
type Activity struct {
	Identity
	Type     string  `json:"activity_type"`
	Duration string  `json:"duration"`
	User     UserRef `json:"user"`
}

// DurationMinutes converts an "HH:MM:SS" duration into whole minutes.
// Seconds are ignored. Missing or malformed parts count as zero, so
// "01:30:59" is 90 and "" is 0.
func DurationMinutes(duration string) int {
	if duration == "" {
		duration = "00:00:00"
	}
	parts := strings.Split(duration, ":")
	var hours, minutes int
	if len(parts) > 0 {
		hours = atoiOrZero(parts[0])
	}
	if len(parts) > 1 {
		minutes = atoiOrZero(parts[1])
	}
	return hours*60 + minutes
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
