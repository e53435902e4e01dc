package output

import (
	"context"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"ndjson", "", true},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsStructured(t *testing.T) {
	if IsStructured(FormatText) {
		t.Error("IsStructured(text) = true, want false")
	}
	if !IsStructured(FormatJSON) {
		t.Error("IsStructured(json) = false, want true")
	}
	if !IsStructured(FormatYAML) {
		t.Error("IsStructured(yaml) = false, want true")
	}
}

func TestFormatFromContext(t *testing.T) {
	ctx := context.Background()
	if got := FormatFromContext(ctx); got != FormatText {
		t.Errorf("FormatFromContext(empty) = %q, want text", got)
	}
	ctx = WithFormat(ctx, FormatYAML)
	if got := FormatFromContext(ctx); got != FormatYAML {
		t.Errorf("FormatFromContext = %q, want yaml", got)
	}
}
