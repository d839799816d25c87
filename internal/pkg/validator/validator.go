package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ParseDate parses a date-like string. Accepts plain dates ("2006-01-02")
// and full RFC3339 timestamps, which date pickers commonly submit.
func ParseDate(dateStr string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", dateStr); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, true
	}
	return time.Time{}, false
}
