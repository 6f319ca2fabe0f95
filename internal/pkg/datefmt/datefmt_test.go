package datefmt

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(t *testing.T, got time.Time)
	}{
		{
			name:  "Wide Fraction Is Truncated To Milliseconds",
			input: "5/03/2024 14:22:10.123456+02",
			check: func(t *testing.T, got time.Time) {
				if got.Hour() != 14 || got.Minute() != 22 || got.Second() != 10 {
					t.Errorf("unexpected time of day: %v", got)
				}
				if got.Nanosecond() != 123000000 {
					t.Errorf("expected 123ms, got %dns", got.Nanosecond())
				}
				if got.Day() != 5 || got.Month() != time.March || got.Year() != 2024 {
					t.Errorf("unexpected date: %v", got)
				}
				_, offset := got.Zone()
				if offset != 2*60*60 {
					t.Errorf("expected +02 offset, got %d", offset)
				}
			},
		},
		{
			name:  "Short Fraction",
			input: "5/03/2024 14:22:10.1+02",
			check: func(t *testing.T, got time.Time) {
				if got.Nanosecond() != 100000000 {
					t.Errorf("expected 100ms, got %dns", got.Nanosecond())
				}
			},
		},
		{
			name:  "Negative Offset",
			input: "15/12/2023 03:05:09.999999-07",
			check: func(t *testing.T, got time.Time) {
				if got.Hour() != 3 {
					t.Errorf("expected hour 3, got %d", got.Hour())
				}
				_, offset := got.Zone()
				if offset != -7*60*60 {
					t.Errorf("expected -07 offset, got %d", offset)
				}
			},
		},
		{
			name:    "Missing Fraction",
			input:   "5/03/2024 14:22:10+02",
			wantErr: true,
		},
		{
			name:    "Missing Offset Sign",
			input:   "5/03/2024 14:22:10.123456",
			wantErr: true,
		},
		{
			name:    "Garbage",
			input:   "not-a-timestamp",
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	moment := time.Date(2024, time.March, 5, 14, 22, 10, 0, loc)

	got := Format(moment)
	want := "Tue, Mar 5, 2024, 14:22:10 UTC+2"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
