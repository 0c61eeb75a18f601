package roster

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrBlockOverflow is returned by ParseBlockTime when the minute remainder of
// an HMM value is not a valid minute count. Historically such values were
// stored as-is and later needed a data repair pass, so they are rejected at
// decode time instead.
var ErrBlockOverflow = errors.New("minute remainder out of range")

var (
	// Matches "FO  ZURCA JULIAN *JACKSON* [114706]" style crew fields.
	crewPattern     = regexp.MustCompile(`^(FO|CA)\s+(.+?)\s*\[(\d+)\]$`)
	nicknamePattern = regexp.MustCompile(`\s*\*[^*]+\*\s*`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

// ParseBlockTime decodes an HMM/HHMM block time string to minutes, e.g.
// "414" is 4h14m = 254. Empty input decodes to 0. Non-numeric input decodes
// to 0 and returns the conversion error so the caller can log the anomaly;
// a minute remainder >= 60 or a negative value returns ErrBlockOverflow.
func ParseBlockTime(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("non-numeric block time %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("block time %q: %w", s, ErrBlockOverflow)
	}

	hours := v / 100
	mins := v % 100
	if mins >= 60 {
		return 0, fmt.Errorf("block time %q: %w", s, ErrBlockOverflow)
	}

	return hours*60 + mins, nil
}

// ParseClockTime decodes an H:MM or HH:MM clock string to minutes since
// midnight. Values past midnight are kept verbatim ("25:30" is 1530). The
// second return value is false when the input is empty or unparseable,
// distinguishing "absent" from "00:00".
func ParseClockTime(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	return hours*60 + mins, true
}

// ParseFlag decodes a boolean roster field: the literal "1" is true,
// everything else is false.
func ParseFlag(s string) bool {
	return strings.TrimSpace(s) == "1"
}

// ParseCrew decodes a crew field into (position, name, id). Sentinel values
// ("Deadheading", "NOT AVAILABLE") and empty input decode to all-absent. Any
// other non-matching input degrades to the raw string as name so a malformed
// crew field never fails the row. Asterisk-wrapped nicknames are stripped
// from the name.
func ParseCrew(s string) (position, name, id string) {
	s = strings.TrimSpace(s)
	if s == "" || s == "Deadheading" || s == "NOT AVAILABLE" {
		return "", "", ""
	}

	m := crewPattern.FindStringSubmatch(s)
	if m == nil {
		return "", s, ""
	}

	name = nicknamePattern.ReplaceAllString(m[2], " ")
	name = strings.TrimSpace(spacePattern.ReplaceAllString(name, " "))

	return m[1], name, m[3]
}

// FormatMinutes formats a minute total as H:MM with unbounded hours.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
