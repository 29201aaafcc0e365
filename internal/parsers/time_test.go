package parsers

import "testing"

func TestParseTime(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		hour   int
		minute int
	}{
		{name: "doors with minutes pm", input: "Doors at 7:30 PM", hour: 19, minute: 30},
		{name: "bare hour pm", input: "Doors: 7PM", hour: 19, minute: 0},
		{name: "dotted meridiem", input: "7 p.m.", hour: 19, minute: 0},
		{name: "morning", input: "7:30 AM", hour: 7, minute: 30},
		{name: "midnight", input: "12 AM", hour: 0, minute: 0},
		{name: "noon", input: "12:15 PM", hour: 12, minute: 15},
		{name: "twenty four hour", input: "Doors 19:30", hour: 19, minute: 30},
		{name: "embedded in label", input: "Show 8:00 PM / Doors 7:00 PM", hour: 20, minute: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, hour, minute, err := ParseTime(tt.input)
			if err != nil {
				t.Fatalf("ParseTime(%q) error: %v", tt.input, err)
			}
			if raw != tt.input {
				t.Errorf("raw = %q, want %q", raw, tt.input)
			}
			if hour != tt.hour || minute != tt.minute {
				t.Errorf("ParseTime(%q) = %d:%02d, want %d:%02d", tt.input, hour, minute, tt.hour, tt.minute)
			}
		})
	}
}

func TestParseTimeErrors(t *testing.T) {
	tests := []string{
		"",
		"Doors",
		"Stage 7",
		"TBA",
	}

	for _, input := range tests {
		if _, _, _, err := ParseTime(input); err == nil {
			t.Errorf("ParseTime(%q) expected an error", input)
		}
	}
}
