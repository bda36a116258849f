package query

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339",
			value: "2024-01-02T03:04:05Z",
			want:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name:  "iso without zone",
			value: "2024-01-02T03:04:05",
			want:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name:  "space separated",
			value: "2024-01-02 03:04:05",
			want:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name:  "date only",
			value: "2024-01-02",
			want:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "compact datetime",
			value: "20240102030405",
			want:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name:  "compact date",
			value: "20240102",
			want:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			value:   "not-a-time",
			wantErr: true,
		},
		{
			name:    "partial date",
			value:   "2024-13-45",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTime("starttime", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseTime() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("parseTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateEnumerated(t *testing.T) {
	allowed := []string{"variation", "adjusted", "quasi-definitive", "definitive"}

	if _, err := validateEnumerated("type", "adjusted", allowed); err != nil {
		t.Errorf("validateEnumerated() unexpected error: %v", err)
	}

	_, err := validateEnumerated("type", "processed", allowed)
	if err == nil {
		t.Fatal("validateEnumerated() expected error for unknown value")
	}
	want := `Bad type value "processed"`
	if err.Error() != want {
		t.Errorf("validateEnumerated() error = %q, want %q", err.Error(), want)
	}
}
