package common

import "testing"

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "debug", want: DebugLevel},
		{in: "INFO", want: InfoLevel},
		{in: " warning ", want: WarnLevel},
		{in: "error", want: ErrorLevel},
		{in: "off", want: DisabledLevel},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLogLevel(%q) returned no error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLogLevel(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogLevelString(t *testing.T) {
	if got := WarnLevel.String(); got != "warn" {
		t.Errorf("WarnLevel.String() = %q", got)
	}
	if got := LogLevel(42).String(); got != "LogLevel(42)" {
		t.Errorf("LogLevel(42).String() = %q", got)
	}
}
