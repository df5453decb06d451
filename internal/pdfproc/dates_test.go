package pdfproc

import (
	"testing"
	"time"
)

func TestParsePDFDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantNil bool
	}{
		{
			name:  "full timestamp with prefix",
			input: "D:20240115103045",
			want:  time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
		},
		{
			name:  "full timestamp without prefix",
			input: "20240115103045",
			want:  time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
		},
		{
			name:  "positive timezone offset",
			input: "D:20240115103045+05'00'",
			want:  time.Date(2024, 1, 15, 5, 30, 45, 0, time.UTC),
		},
		{
			name:  "negative timezone offset",
			input: "D:20231201120000-08'00'",
			want:  time.Date(2023, 12, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			name:  "half hour offset",
			input: "D:20240601000000+05'30'",
			want:  time.Date(2024, 5, 31, 18, 30, 0, 0, time.UTC),
		},
		{
			name:  "trailing Z ignored",
			input: "D:20240115103045Z",
			want:  time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
		},
		{
			name:  "date only",
			input: "D:20240115",
			want:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "date only without prefix",
			input: "20240115",
			want:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty string",
			input:   "",
			wantNil: true,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantNil: true,
		},
		{
			name:    "garbage",
			input:   "not a date",
			wantNil: true,
		},
		{
			name:    "truncated",
			input:   "D:2024",
			wantNil: true,
		},
		{
			name:    "invalid month",
			input:   "D:20241301120000",
			wantNil: true,
		},
		{
			name:    "invalid day",
			input:   "D:20240145120000",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePDFDate(tt.input)
			if tt.wantNil {
				if got != nil {
					t.Errorf("ParsePDFDate(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParsePDFDate(%q) = nil, want %v", tt.input, tt.want)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParsePDFDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
