package payload

import (
	"strings"
	"time"
)

// TimestampLayout is the absolute timestamp format of every wire date.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
}

// Timestamp normalizes a form date to TimestampLayout in UTC. Empty or
// unparsable input yields nil.
func Timestamp(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		out := t.UTC().Format(TimestampLayout)
		return &out
	}
	return nil
}

// LenientInt parses the leading integer of s, ignoring leading whitespace and
// anything after the digits: "1998abc" is 1998. Input without leading digits,
// or whose digits overflow an int32, yields nil.
func LenientInt(s string) *int {
	s = strings.TrimLeft(s, " \t\r\n")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		n = n*10 + int(s[digits]-'0')
		digits++
		if n > 1<<31 {
			return nil
		}
	}
	if digits == 0 {
		return nil
	}
	if neg {
		n = -n
	}
	return &n
}
