package accounting

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMinutes renders minutes as "{h}h {m}min". Hours are floored and the
// minute remainder keeps the sign of the total, so -90 renders as "-2h -30min".
func FormatMinutes(total int) string {
	hours, minutes := SplitMinutes(total)
	return fmt.Sprintf("%dh %dmin", hours, minutes)
}

// SplitMinutes returns floor(total/60) and total rem 60.
func SplitMinutes(total int) (hours, minutes int) {
	hours = total / 60
	if total%60 != 0 && total < 0 {
		hours--
	}
	return hours, total % 60
}

// ParseFormatted reads a FormatMinutes string back into minutes by splitting
// on "h" and taking the leading integer of each side.
func ParseFormatted(text string) (int, bool) {
	parts := strings.Split(text, "h")
	if len(parts) < 2 {
		return 0, false
	}

	hours, ok := leadingInt(parts[0])
	if !ok {
		return 0, false
	}
	minutes, ok := leadingInt(parts[1])
	if !ok {
		return 0, false
	}
	return hours*60 + minutes, true
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		ch := s[end]
		if ch >= '0' && ch <= '9' || (end == 0 && (ch == '-' || ch == '+')) {
			end++
			continue
		}
		break
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
