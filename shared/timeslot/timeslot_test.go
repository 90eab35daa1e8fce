package timeslot_test

import (
	"testing"

	"tablebook/shared/failure"
	"tablebook/shared/timeslot"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{
			name:     "midnight",
			input:    "00:00",
			expected: 0,
		},
		{
			name:     "morning",
			input:    "10:00",
			expected: 600,
		},
		{
			name:     "half hour",
			input:    "19:30",
			expected: 1170,
		},
		{
			name:     "last minute of day",
			input:    "23:59",
			expected: 1439,
		},
		{
			name:    "missing leading zero",
			input:   "9:00",
			wantErr: true,
		},
		{
			name:    "hour out of range",
			input:   "25:00",
			wantErr: true,
		},
		{
			name:    "minute out of range",
			input:   "10:61",
			wantErr: true,
		},
		{
			name:    "not a time",
			input:   "banana",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "with seconds",
			input:   "10:00:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := timeslot.ToMinutes(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for input %q, got nil", tt.input)
				}
				if failure.GetCode(err) != 400 {
					t.Errorf("expected bad request code, got %d", failure.GetCode(err))
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestToClock(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected string
	}{
		{
			name:     "midnight",
			input:    0,
			expected: "00:00",
		},
		{
			name:     "single digit hour padded",
			input:    540,
			expected: "09:00",
		},
		{
			name:     "half hour",
			input:    1170,
			expected: "19:30",
		},
		{
			name:     "last minute of day",
			input:    1439,
			expected: "23:59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := timeslot.ToClock(tt.input)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestToMinutesToClockRoundTrip(t *testing.T) {
	for minutes := 0; minutes < 1440; minutes += 7 {
		clock := timeslot.ToClock(minutes)

		back, err := timeslot.ToMinutes(clock)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", clock, err)
		}
		if back != minutes {
			t.Fatalf("round trip failed: %d -> %s -> %d", minutes, clock, back)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                         string
		existStart, existEnd         int
		candidateStart, candidateEnd int
		expected                     bool
	}{
		{
			name:       "identical intervals",
			existStart: 600, existEnd: 720,
			candidateStart: 600, candidateEnd: 720,
			expected: true,
		},
		{
			name:       "partial overlap at end",
			existStart: 600, existEnd: 720,
			candidateStart: 660, candidateEnd: 780,
			expected: true,
		},
		{
			name:       "candidate inside existing",
			existStart: 600, existEnd: 840,
			candidateStart: 660, candidateEnd: 720,
			expected: true,
		},
		{
			name:       "existing inside candidate",
			existStart: 660, existEnd: 720,
			candidateStart: 600, candidateEnd: 840,
			expected: true,
		},
		{
			name:       "back to back, existing first",
			existStart: 600, existEnd: 720,
			candidateStart: 720, candidateEnd: 840,
			expected: false,
		},
		{
			name:       "back to back, candidate first",
			existStart: 720, existEnd: 840,
			candidateStart: 600, candidateEnd: 720,
			expected: false,
		},
		{
			name:       "fully disjoint",
			existStart: 600, existEnd: 660,
			candidateStart: 840, candidateEnd: 900,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := timeslot.Overlaps(tt.existStart, tt.existEnd, tt.candidateStart, tt.candidateEnd)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestWithinHours(t *testing.T) {
	tests := []struct {
		name             string
		opening, closing int
		start, end       int
		expected         bool
	}{
		{
			name:    "exactly fills the window",
			opening: 600, closing: 1320,
			start: 600, end: 1320,
			expected: true,
		},
		{
			name:    "inside the window",
			opening: 600, closing: 1320,
			start: 660, end: 780,
			expected: true,
		},
		{
			name:    "starts before opening",
			opening: 600, closing: 1320,
			start: 570, end: 780,
			expected: false,
		},
		{
			name:    "ends after closing",
			opening: 600, closing: 1320,
			start: 1260, end: 1380,
			expected: false,
		},
		{
			name:    "malformed hours reject everything",
			opening: 1320, closing: 600,
			start: 660, end: 780,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := timeslot.WithinHours(tt.opening, tt.closing, tt.start, tt.end)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestEndTime(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		duration int
		expected string
		wantErr  bool
	}{
		{
			name:     "two hour dinner",
			start:    "19:00",
			duration: 120,
			expected: "21:00",
		},
		{
			name:     "half hour",
			start:    "10:00",
			duration: 30,
			expected: "10:30",
		},
		{
			name:     "crosses midnight wraps around",
			start:    "23:30",
			duration: 60,
			expected: "00:30",
		},
		{
			name:    "malformed start",
			start:   "24:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := timeslot.EndTime(tt.start, tt.duration)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for start %q, got nil", tt.start)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestEndTimeRoundTrip(t *testing.T) {
	start := "18:30"
	duration := 90

	end, err := timeslot.EndTime(start, duration)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	endMinutes, err := timeslot.ToMinutes(end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if timeslot.ToClock(endMinutes-duration) != start {
		t.Errorf("subtracting duration did not recover start: got %s", timeslot.ToClock(endMinutes-duration))
	}
}

func TestIsClock(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"00:00", true},
		{"23:59", true},
		{"10:30", true},
		{"9:00", false},
		{"24:00", false},
		{"10:60", false},
		{"10-30", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if timeslot.IsClock(tt.input) != tt.expected {
				t.Errorf("IsClock(%q): expected %v", tt.input, tt.expected)
			}
		})
	}
}

func TestIsDate(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"2026-08-30", true},
		{"2026-02-28", true},
		{"2026-13-01", false},
		{"2026-02-30", false},
		{"26-08-30", false},
		{"2026/08/30", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if timeslot.IsDate(tt.input) != tt.expected {
				t.Errorf("IsDate(%q): expected %v", tt.input, tt.expected)
			}
		})
	}
}
