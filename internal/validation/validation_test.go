package validation

import "testing"

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "valid", raw: "8", want: 8},
		{name: "valid with spaces", raw: " 300 ", want: 300},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
		{name: "non-numeric", raw: "abc", wantErr: true},
		{name: "partial numeric", raw: "8s", wantErr: true},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-5", wantErr: true},
		{name: "float", raw: "2.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeconds(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSeconds(%q) = %d, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSeconds(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseSeconds(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "valid", raw: "0.5", want: 0.5},
		{name: "zero", raw: "0", want: 0},
		{name: "one", raw: "1", want: 1},
		{name: "empty", raw: "", wantErr: true},
		{name: "non-numeric", raw: "high", wantErr: true},
		{name: "negative", raw: "-0.1", wantErr: true},
		{name: "above one", raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfidence(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseConfidence(%q) = %v, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfidence(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseConfidence(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
