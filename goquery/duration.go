package goquery

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sosodev/duration"
)

var (
	hoursRe   = regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|hrs?|h\b|heures?|stunden?|std|ore?|godzin\w*|час\w*|ч\b|ώρ\w*|ساعة|ساعات|時間|시간|giờ|tiếng)`)
	minutesRe = regexp.MustCompile(`(?i)(\d+)\s*(?:minutes?|mins?|m\b|min\b|minuten?|minuti?|minut\w*|мин\w*|λεπτ\w*|دقيقة|دقائق|分|분|phút)`)
)

// formatISODuration parses an ISO-8601 duration (PT1H30M) and renders
// it as human-readable minutes/hours text ("1 hour 30 minutes").
func formatISODuration(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "P") {
		return "", false
	}
	d, err := duration.Parse(s)
	if err != nil {
		return "", false
	}
	hours := int(d.Hours) + 24*int(d.Days)
	minutes := int(d.Minutes)
	if d.Seconds >= 30 {
		minutes++
	}
	hours += minutes / 60
	minutes %= 60
	if hours == 0 && minutes == 0 {
		return "", false
	}
	return formatHoursMinutes(hours, minutes), true
}

// parseTimeText extracts hour/minute counts from a free-text time
// phrase ("1 h 30 min", "20 минут") and renders them uniformly.
func parseTimeText(s string) (string, bool) {
	hours, minutes := 0, 0
	if m := hoursRe.FindStringSubmatch(s); m != nil {
		hours, _ = strconv.Atoi(m[1])
	}
	if m := minutesRe.FindStringSubmatch(s); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}
	if hours == 0 && minutes == 0 {
		return "", false
	}
	return formatHoursMinutes(hours, minutes), true
}

func formatHoursMinutes(hours, minutes int) string {
	var parts []string
	if hours == 1 {
		parts = append(parts, "1 hour")
	} else if hours > 1 {
		parts = append(parts, fmt.Sprintf("%d hours", hours))
	}
	if minutes == 1 {
		parts = append(parts, "1 minute")
	} else if minutes > 1 {
		parts = append(parts, fmt.Sprintf("%d minutes", minutes))
	}
	return strings.Join(parts, " ")
}
