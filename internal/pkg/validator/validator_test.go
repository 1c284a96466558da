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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"not-a-uuid",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"9876543210", "9876543210"},
		{"98765 43210", "9876543210"},
		{"98765-43210", "9876543210"},
		{"(987) 654-3210", "9876543210"},
		{"98.76.54.32.10", "9876543210"},
	}
	for _, c := range cases {
		got := NormalizePhone(c.input)
		if got != c.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"9876543210", "98765 43210", "98765-43210", "(987) 654-3210"}
	invalid := []string{"987654321", "98765432101", "98765a3210", "+919876543210", ""}
	for _, phone := range valid {
		if !IsValidPhone(phone) {
			t.Errorf("IsValidPhone(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhone(phone) {
			t.Errorf("IsValidPhone(%q) = true, want false", phone)
		}
	}
}

func TestParseAmount(t *testing.T) {
	d, ok, err := ParseAmount("120.50")
	if err != nil || !ok {
		t.Fatalf("ParseAmount(\"120.50\") err=%v ok=%v", err, ok)
	}
	if d.String() != "120.5" {
		t.Errorf("ParseAmount(\"120.50\") = %s, want 120.5", d)
	}

	_, ok, err = ParseAmount("  ")
	if err != nil || ok {
		t.Errorf("ParseAmount blank: want ok=false err=nil, got ok=%v err=%v", ok, err)
	}

	_, _, err = ParseAmount("12x")
	if err == nil {
		t.Error("ParseAmount(\"12x\") expected error")
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"present", "absent", "halfday"}
	if !IsInSlice("halfday", statuses) {
		t.Error("IsInSlice(halfday) = false, want true")
	}
	if IsInSlice("late", statuses) {
		t.Error("IsInSlice(late) = true, want false")
	}
}
