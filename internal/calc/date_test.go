package calc

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateOf_StripsTimeOfDay(t *testing.T) {
	ist, err := time.LoadLocation("Europe/Istanbul")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 23:30 local and 00:30 UTC next day are different instants but must
	// normalize to their own calendar days.
	local := time.Date(2026, time.May, 25, 23, 30, 0, 0, ist)
	utc := time.Date(2026, time.May, 26, 0, 30, 0, 0, time.UTC)

	if got := DateOf(local); got != NewDate(2026, time.May, 25) {
		t.Errorf("expected 2026-05-25, got %s", got)
	}
	if got := DateOf(utc); got != NewDate(2026, time.May, 26) {
		t.Errorf("expected 2026-05-26, got %s", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-05-26")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d != NewDate(2026, time.May, 26) {
		t.Errorf("expected 2026-05-26, got %s", d)
	}

	if _, err := ParseDate("26.05.2026"); err == nil {
		t.Error("expected error for non-ISO input")
	}
}

func TestDate_AddDaysAcrossMonth(t *testing.T) {
	d := NewDate(2026, time.February, 28)
	if got := d.AddDays(1); got != NewDate(2026, time.March, 1) {
		t.Errorf("expected 2026-03-01, got %s", got)
	}
	if got := d.AddDays(-28); got != NewDate(2026, time.January, 31) {
		t.Errorf("expected 2026-01-31, got %s", got)
	}
}

func TestDate_Ordering(t *testing.T) {
	a := NewDate(2026, time.May, 25)
	b := NewDate(2026, time.May, 26)

	if !a.Before(b) || b.Before(a) {
		t.Error("Before is inconsistent")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After is inconsistent")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a date must not order against itself")
	}
}

func TestDate_Formatting(t *testing.T) {
	d := NewDate(2026, time.May, 31)

	if d.String() != "2026-05-31" {
		t.Errorf("expected 2026-05-31, got %s", d.String())
	}
	if d.Label() != "31.05.2026" {
		t.Errorf("expected 31.05.2026, got %s", d.Label())
	}
	if d.DayName() != "Pazar" {
		t.Errorf("expected Pazar, got %s", d.DayName())
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.October, 29)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `"2026-10-29"` {
		t.Errorf("unexpected JSON %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip mismatch: %s != %s", back, d)
	}
}
