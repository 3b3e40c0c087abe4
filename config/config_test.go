package config

import "testing"

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	if got := GetString(c, "PORT", "8080"); got != "9090" {
		t.Errorf("expected 9090, got %q", got)
	}
	if got := GetString(c, "EMPTY", "fallback"); got != "" {
		t.Errorf("expected empty value to win over default, got %q", got)
	}
	if got := GetString(c, "MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := GetString(nil, "PORT", "8080"); got != "8080" {
		t.Errorf("expected fallback for nil config, got %q", got)
	}
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "30", "BAD": "not-a-number"}

	if got := GetInt(c, "TIMEOUT", 10); got != 30 {
		t.Errorf("expected 30, got %d", got)
	}
	if got := GetInt(c, "BAD", 10); got != 10 {
		t.Errorf("expected fallback for unparsable value, got %d", got)
	}
	if got := GetInt(c, "MISSING", 10); got != 10 {
		t.Errorf("expected fallback, got %d", got)
	}
}
