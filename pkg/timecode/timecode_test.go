package timecode

import "testing"

func TestFormatHMS(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3599, "00:59:59"},
		{3661, "01:01:01"},
		{36000, "10:00:00"},
	}
	for _, tc := range cases {
		if got := FormatHMS(tc.seconds); got != tc.want {
			t.Errorf("FormatHMS(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00:05", 5},
		{"01:02:03", 3723},
		{"02:30", 150},
		{"00:00", 0},
		{" 01:00 ", 60},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.input)
		if err != nil {
			t.Fatalf("ParseClock(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, input := range []string{"", "5", "1:2:3:4", "aa:bb", "00:xx:00"} {
		if _, err := ParseClock(input); err == nil {
			t.Errorf("ParseClock(%q) expected error", input)
		}
	}
}
