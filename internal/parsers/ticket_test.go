package parsers

import (
	"reflect"
	"testing"

	"github.com/rvagigs/venue-capture/internal/capture"
)

func TestParseTicketString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []capture.TicketAmtInfo
	}{
		{
			name:  "single amount",
			input: "$10",
			want:  []capture.TicketAmtInfo{{Amt: 10}},
		},
		{
			name:  "decimal amount",
			input: "$12.50",
			want:  []capture.TicketAmtInfo{{Amt: 12.5}},
		},
		{
			name:  "amount with qualifier",
			input: "$5 minimum",
			want:  []capture.TicketAmtInfo{{Amt: 5, Qualifier: "minimum"}},
		},
		{
			name:  "advance and day of show",
			input: "$10 / $15 day of show",
			want: []capture.TicketAmtInfo{
				{Amt: 10},
				{Amt: 15, Qualifier: "day of show"},
			},
		},
		{
			name:  "free marker",
			input: "Free",
			want:  []capture.TicketAmtInfo{{Amt: 0}},
		},
		{
			name:  "free wins over amounts",
			input: "Free before 9 PM",
			want:  []capture.TicketAmtInfo{{Amt: 0}},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "no amount",
			input: "TBD",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTicketString(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTicketString(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
