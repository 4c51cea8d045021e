package transcript

import "testing"

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "[0:00]"},
		{"seconds only", 5, "[0:05]"},
		{"minute and seconds", 65, "[1:05]"},
		{"fraction truncated", 65.999, "[1:05]"},
		{"hours", 3661, "[1:01:01]"},
		{"hours unpadded", 36000, "[10:00:00]"},
		{"negative clamped", -3, "[0:00]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.seconds); got != tt.want {
				t.Errorf("FormatTimestamp(%v) = %v, want %v", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"under a minute", 59, "0:59"},
		{"fraction truncated", 59.9, "0:59"},
		{"minutes", 600, "10:00"},
		{"hours", 7322, "2:02:02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.seconds); got != tt.want {
				t.Errorf("FormatDuration(%v) = %v, want %v", tt.seconds, got, tt.want)
			}
		})
	}
}
