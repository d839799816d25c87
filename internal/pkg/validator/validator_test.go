package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestParseDate(t *testing.T) {
	valid := map[string]time.Time{
		"2024-01-01":           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		"2000-12-31":           time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC),
		"2024-01-01T00:00:00Z": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	invalid := []string{"2024-13-01", "2024-01-32", "2024/01/01", "01-01-2024", "", "yesterday"}

	for input, want := range valid {
		got, ok := ParseDate(input)
		if !ok {
			t.Errorf("ParseDate(%q) = false, want true", input)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", input, got, want)
		}
	}
	for _, input := range invalid {
		if _, ok := ParseDate(input); ok {
			t.Errorf("ParseDate(%q) = true, want false", input)
		}
	}
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "Name is required"},
		{Field: "email", Message: "Invalid email address"},
	}
	want := "name: Name is required; email: Invalid email address"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	m := errs.ToMap()
	if m["name"] != "Name is required" || m["email"] != "Invalid email address" {
		t.Errorf("ToMap() = %v", m)
	}
}
