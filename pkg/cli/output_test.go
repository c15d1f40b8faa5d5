package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

type summary struct {
	Name string `json:"name"`
}

func (s summary) String() string { return "name: " + s.Name }

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
			var cfgErr *ConfigError
			if tt.wantErr && !errors.As(err, &cfgErr) {
				t.Errorf("error should be a *ConfigError, got %T", err)
			}
		})
	}
}

func TestTextFormatterUsesStringer(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := NewFormatter(FormatText).FormatTo(buf, summary{Name: "dev"}); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	if got, want := buf.String(), "name: dev\n"; got != want {
		t.Errorf("FormatTo() = %q, want %q", got, want)
	}
}

func TestJSONFormatter(t *testing.T) {
	tests := []struct {
		name   string
		indent bool
	}{
		{"compact", false},
		{"indented", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &JSONFormatter{Indent: tt.indent}

			out, err := f.Format(summary{Name: "staging"})
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			var decoded summary
			if err := json.Unmarshal(out, &decoded); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if decoded.Name != "staging" {
				t.Errorf("name = %q, want %q", decoded.Name, "staging")
			}
			if tt.indent != bytes.Contains(out, []byte("\n")) {
				t.Errorf("indent = %v but output is %q", tt.indent, out)
			}
		})
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("NewFormatter(json) should return *JSONFormatter")
	}
	if _, ok := NewFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("NewFormatter(text) should return *TextFormatter")
	}
}
