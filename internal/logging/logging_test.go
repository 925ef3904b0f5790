package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "debug_enabled", debug: true, wantDebug: true},
		{name: "debug_disabled", debug: false, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := New(&buf, tt.debug)
			logger.Debug("malformed path", "path", "a..b")
			logger.Warn("focus did not resolve")

			out := buf.String()
			if got := strings.Contains(out, "malformed path"); got != tt.wantDebug {
				t.Fatalf("debug record present = %v, want %v\n%s", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "focus did not resolve") {
				t.Fatalf("warn record missing\n%s", out)
			}
		})
	}
}
