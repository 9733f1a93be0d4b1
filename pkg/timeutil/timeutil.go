// Package timeutil converts between the duration and clock formats used by the
// store ('HH:MM:SS' strings, possibly beyond 24 hours) and elapsed seconds,
// and renders calendar labels in Spanish for the exported reports.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses "HH:MM" or "HH:MM:SS" into elapsed seconds. The hour part
// may exceed 24 (accumulated totals like "480:00:00").
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock value: %q", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	sec := 0
	if len(parts) == 3 {
		sec, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, fmt.Errorf("invalid second in %q", s)
		}
	}
	if h < 0 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("clock value out of range: %q", s)
	}

	return h*3600 + m*60 + sec, nil
}

// FormatClock renders elapsed seconds as "HH:MM:SS". Hours are not wrapped at
// 24, so accumulated totals keep their full value.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// NormalizeDuration converts a stored duration string to strict "HH:MM:SS".
// Inputs in the "N day(s), HH:MM:SS" form are flattened into total hours:
// "1 day, 02:00:00" becomes "26:00:00". Empty and "None" become "00:00:00".
// Anything else passes through unchanged.
func NormalizeDuration(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "None" {
		return "00:00:00"
	}

	if !strings.Contains(s, "day") {
		return s
	}

	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return s
	}

	daysField := strings.Fields(strings.TrimSpace(parts[0]))
	if len(daysField) == 0 {
		return s
	}
	days, err := strconv.Atoi(daysField[0])
	if err != nil {
		return s
	}

	clock, err := ParseClock(parts[1])
	if err != nil {
		return s
	}

	return FormatClock(days*24*3600 + clock)
}

// NormalizeBaseHours turns a roster baseline-hours cell into canonical
// "HH:MM:SS". Digit-only cells are whole hours, cells with a colon pass
// through, decimals without a colon truncate to whole hours, and anything
// unparseable collapses to zero.
func NormalizeBaseHours(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "00:00:00"
	}

	if isDigits(s) {
		h, _ := strconv.Atoi(s)
		return fmt.Sprintf("%02d:00:00", h)
	}

	if strings.Contains(s, ":") {
		return s
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fmt.Sprintf("%02d:00:00", int(f))
	}

	return "00:00:00"
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var spanishDays = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

var spanishMonths = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// SpanishDate renders a date as "Lunes 2 Enero 2026".
func SpanishDate(t time.Time) string {
	weekday := int(t.Weekday()) // Sunday = 0
	idx := (weekday + 6) % 7    // Monday-first index
	return fmt.Sprintf("%s %d %s %d", spanishDays[idx], t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// TitleCaseName normalizes a person name: each whitespace-delimited token gets
// an upper-case initial and lower-case remainder.
func TitleCaseName(name string) string {
	fields := strings.Fields(name)
	for i, f := range fields {
		runes := []rune(strings.ToLower(f))
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}
