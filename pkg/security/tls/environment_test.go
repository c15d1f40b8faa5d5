package tls

import "testing"

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		input   string
		wantDev bool
		name    string
	}{
		{input: "", wantDev: true, name: "development"},
		{input: "development", wantDev: true, name: "development"},
		{input: "staging", wantDev: false, name: "staging"},
		{input: "prod", wantDev: false, name: "prod"},
		{input: "Development", wantDev: false, name: "Development"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			env := ParseEnvironment(tt.input)
			if env.IsDevelopment() != tt.wantDev {
				t.Errorf("IsDevelopment() = %v, want %v", env.IsDevelopment(), tt.wantDev)
			}
			if env.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", env.Name(), tt.name)
			}
			if env.String() != tt.name {
				t.Errorf("String() = %q, want %q", env.String(), tt.name)
			}
		})
	}

	if ParseEnvironment("development") != Development {
		t.Error("expected development to equal the Development value")
	}
}
