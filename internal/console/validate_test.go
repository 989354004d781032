package console

import (
	"strings"
	"testing"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/model"
)

func TestParseInt(t *testing.T) {
	if v, err := ParseInt(" 42 ", 1, 100); err != nil || v != 42 {
		t.Fatalf("got %d, %v", v, err)
	}
	for _, bad := range []string{"", "abc", "1.5", "0", "101"} {
		if _, err := ParseInt(bad, 1, 100); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseFloat(t *testing.T) {
	if v, err := ParseFloat("10400.5", 0, 100000); err != nil || v != 10400.5 {
		t.Fatalf("got %v, %v", v, err)
	}
	for _, bad := range []string{"", "abc", "-1", "100001"} {
		if _, err := ParseFloat(bad, 0, 100000); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseDateValidator(t *testing.T) {
	d, err := ParseDate("15/06/2024")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d != (model.Date{Day: 15, Month: 6, Year: 2024}) {
		t.Fatalf("got %v", d)
	}
	if _, err := ParseDate("31/13/2024"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestValidateName(t *testing.T) {
	if name, err := ValidateName("  John Driver "); err != nil || name != "John Driver" {
		t.Fatalf("got %q, %v", name, err)
	}
	// A name with digits is fine as long as something else is in it.
	if _, err := ValidateName("John 5"); err != nil {
		t.Fatalf("mixed name rejected: %v", err)
	}
	for _, bad := range []string{"", "   ", "12345", "12 34"} {
		if _, err := ValidateName(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
	long, err := ValidateName(strings.Repeat("a", 80))
	if err != nil {
		t.Fatalf("long name: %v", err)
	}
	if len(long) != model.MaxNameLen {
		t.Fatalf("len = %d, want %d", len(long), model.MaxNameLen)
	}
}

func TestValidateCode(t *testing.T) {
	code, err := ValidateCode(" chd-101a ")
	if err != nil || code != "CHD-101A" {
		t.Fatalf("got %q, %v", code, err)
	}
	if _, err := ValidateCode("   "); err == nil {
		t.Fatalf("expected error for blank code")
	}
}
