package cli

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, verr := ParseDate("2026-03-15")
		if verr != nil {
			t.Fatalf("unexpected validation error: %v", verr)
		}
		want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("trims whitespace", func(t *testing.T) {
		if _, verr := ParseDate("  2026-03-15  "); verr != nil {
			t.Errorf("expected whitespace to be trimmed, got %v", verr)
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		for _, input := range []string{"", "15/03/2026", "2026-13-01", "yesterday", "2026-02-30"} {
			if _, verr := ParseDate(input); verr == nil {
				t.Errorf("expected %q to be rejected", input)
			}
		}
	})
}

func TestParseAmount(t *testing.T) {
	t.Run("valid amounts", func(t *testing.T) {
		for input, want := range map[string]float64{"42.50": 42.5, "1": 1, "0.01": 0.01} {
			got, verr := ParseAmount(input)
			if verr != nil {
				t.Errorf("%q: unexpected validation error: %v", input, verr)
				continue
			}
			if got != want {
				t.Errorf("%q: expected %v, got %v", input, want, got)
			}
		}
	})

	t.Run("rejects non-positive and non-numeric input", func(t *testing.T) {
		for _, input := range []string{"", "abc", "0", "-5", "-0.01"} {
			if _, verr := ParseAmount(input); verr == nil {
				t.Errorf("expected %q to be rejected", input)
			}
		}
	})
}

func TestParseChoice(t *testing.T) {
	t.Run("accepts values within the range", func(t *testing.T) {
		for _, input := range []string{"1", "12", "7"} {
			if _, verr := ParseChoice(input, 1, 12); verr != nil {
				t.Errorf("expected %q to be accepted: %v", input, verr)
			}
		}
	})

	t.Run("rejects values outside the range", func(t *testing.T) {
		for _, input := range []string{"0", "13", "-1", "x", ""} {
			if _, verr := ParseChoice(input, 1, 12); verr == nil {
				t.Errorf("expected %q to be rejected", input)
			}
		}
	})
}

func TestParseText(t *testing.T) {
	t.Run("trims and accepts non-empty input", func(t *testing.T) {
		got, verr := ParseText("category", "  Groceries ")
		if verr != nil {
			t.Fatalf("unexpected validation error: %v", verr)
		}
		if got != "Groceries" {
			t.Errorf("expected trimmed value, got %q", got)
		}
	})

	t.Run("rejects blank input", func(t *testing.T) {
		for _, input := range []string{"", "   "} {
			if _, verr := ParseText("category", input); verr == nil {
				t.Errorf("expected %q to be rejected", input)
			}
		}
	})
}

func TestToDate(t *testing.T) {
	t.Run("keeps the local calendar day", func(t *testing.T) {
		// 01:30 on the 2nd in UTC+13 is still the 1st in UTC; the date must
		// follow the local calendar, not the UTC instant.
		east := time.FixedZone("UTC+13", 13*3600)
		got := toDate(time.Date(2026, 7, 2, 1, 30, 0, 0, east))

		want := time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("stamps UTC midnight", func(t *testing.T) {
		got := toDate(time.Date(2026, 7, 2, 23, 59, 59, 0, time.FixedZone("UTC-10", -10*3600)))
		if got.Location() != time.UTC || got.Hour() != 0 || got.Minute() != 0 {
			t.Errorf("expected UTC midnight, got %v", got)
		}
		if got.Day() != 2 {
			t.Errorf("expected the 2nd, got %v", got)
		}
	})
}

func TestValidationError_Error(t *testing.T) {
	verr := &ValidationError{Field: "amount", Reason: "must be a number"}
	if verr.Error() != "amount: must be a number" {
		t.Errorf("unexpected error string: %q", verr.Error())
	}
}
