package wallclock

import (
	"testing"
	"time"
)

func TestIsLate(t *testing.T) {
	cases := []struct {
		name      string
		scheduled string
		submitted string
		want      bool
	}{
		{"no schedule is never late", "", "23:59", false},
		{"no schedule early submission", "", "00:00", false},
		{"exactly on time", "08:00", "08:00", false},
		{"one minute late", "08:00", "08:01", true},
		{"one minute early", "08:00", "07:59", false},
		{"hour boundary", "09:59", "10:00", true},
		{"midnight schedule", "00:00", "00:01", true},
		{"end of day on time", "23:59", "23:59", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsLate(tc.scheduled, tc.submitted); got != tc.want {
				t.Errorf("IsLate(%q, %q) = %v, want %v", tc.scheduled, tc.submitted, got, tc.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59", "12:00"}
	for _, s := range valid {
		if !Valid(s) {
			t.Errorf("Valid(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "8:00", "24:00", "12:60", "1200", "12-00", "ab:cd", "12:00:00"}
	for _, s := range invalid {
		if Valid(s) {
			t.Errorf("Valid(%q) = true, want false", s)
		}
	}
}

func TestTimeOfDayAndDateKeyUseLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 2024-06-02 01:30 UTC is still 2024-06-01 21:30 in New York.
	instant := time.Date(2024, 6, 2, 1, 30, 0, 0, time.UTC)

	if got := TimeOfDay(instant, ny); got != "21:30" {
		t.Errorf("TimeOfDay = %q, want 21:30", got)
	}
	if got := DateKey(instant, ny); got != "2024-06-01" {
		t.Errorf("DateKey = %q, want 2024-06-01", got)
	}
	if got := DateKey(instant, time.UTC); got != "2024-06-02" {
		t.Errorf("DateKey UTC = %q, want 2024-06-02", got)
	}
	if got := TimeOfDay(instant, nil); got != "01:30" {
		t.Errorf("TimeOfDay nil loc = %q, want 01:30", got)
	}
}

func TestLocation(t *testing.T) {
	loc, err := Location("")
	if err != nil || loc != time.UTC {
		t.Errorf("Location(\"\") = %v, %v; want UTC, nil", loc, err)
	}
	if _, err := Location("Europe/Berlin"); err != nil {
		t.Errorf("Location(Europe/Berlin) unexpected error: %v", err)
	}
	if _, err := Location("Narnia/Lantern"); err == nil {
		t.Error("Location(Narnia/Lantern) expected error")
	}
}

func TestParseDate(t *testing.T) {
	ny, _ := time.LoadLocation("America/New_York")
	got, err := ParseDate("2024-06-01", ny)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, ny)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
	if _, err := ParseDate("06/01/2024", time.UTC); err == nil {
		t.Error("ParseDate with wrong layout expected error")
	}
}
