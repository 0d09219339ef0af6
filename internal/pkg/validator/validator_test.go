package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"tabs and newlines", "\t\n", true},
		{"non-empty", "hello", false},
		{"padded value", "  hello  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.input); got != tt.expected {
				t.Errorf("IsEmpty(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid email", "user@example.com", true},
		{"valid with plus", "user+tag@example.com", true},
		{"missing at", "userexample.com", false},
		{"missing domain", "user@", false},
		{"missing tld", "user@example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.input); got != tt.expected {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidUUID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid uuidv7", "01912d68-783e-7a03-8467-5661c1d0e4a8", true},
		{"uppercase accepted", "01912D68-783E-7A03-8467-5661C1D0E4A8", true},
		{"uuidv4 rejected", "d9428888-122b-11e1-b85c-61cd3cbb3210", false},
		{"not a uuid", "hello", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidUUID(tt.input); got != tt.expected {
				t.Errorf("IsValidUUID(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid date", "2026-03-01", true},
		{"invalid month", "2026-13-01", false},
		{"wrong format", "01-03-2026", false},
		{"not a date", "tomorrow", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := IsValidDate(tt.input); got != tt.expected {
				t.Errorf("IsValidDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid morning", "09:30", true},
		{"valid midnight", "00:00", true},
		{"valid last minute", "23:59", true},
		{"hour out of range", "24:00", false},
		{"minute out of range", "10:60", false},
		{"missing minutes", "10", false},
		{"with seconds", "10:30:00", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTimeOfDay(tt.input); got != tt.expected {
				t.Errorf("IsValidTimeOfDay(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"pending", "under_review", "shortlisted"}

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"present", "pending", true},
		{"absent", "accepted", false},
		{"case sensitive", "Pending", false},
		{"empty value", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInSlice(tt.value, statuses); got != tt.expected {
				t.Errorf("IsInSlice(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestIsValidDateTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"rfc3339 utc", "2026-01-15T10:30:00Z", true},
		{"rfc3339 offset", "2026-01-15T10:30:00+07:00", true},
		{"rfc3339 nano", "2026-01-15T10:30:00.123456789Z", true},
		{"date only", "2026-01-15", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := IsValidDateTime(tt.input); got != tt.expected {
				t.Errorf("IsValidDateTime(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
