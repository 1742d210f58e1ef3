package validator

import (
	"testing"
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

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-05-01"); !ok {
		t.Error("IsValidDate(\"2024-05-01\") = false, want true")
	}
	for _, s := range []string{"2024-13-01", "01-05-2024", "2024-05-01T09:00:00", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00:00", "09:00:00", "23:59:59"}
	invalid := []string{"24:00:00", "09:00", "9:00:00 AM", ""}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"ENG-2024-1234", "HRD-1999-0001"}
	invalid := []string{"eng-2024-1234", "ENGI-2024-1234", "ENG-24-1234", "ENG-2024-12345", ""}
	for _, s := range valid {
		if !IsValidEmployeeCode(s) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidEmployeeCode(s) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2024-05-01T09:15:00Z", true},
		{"2024-05-01T09:15:00+07:00", true},
		{"2024-05-01T09:15:00", true},
		{"2024-05-01 09:15:00", false},
		{"2024-05-01", false},
		{"", false},
	}
	for _, c := range cases {
		_, ok := IsValidDateTime(c.input)
		if ok != c.want {
			t.Errorf("IsValidDateTime(%q) = %v, want %v", c.input, ok, c.want)
		}
	}
}
