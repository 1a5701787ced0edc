package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	if FromContext(context.Background()) != DefaultLogger() {
		t.Errorf("expected default logger for empty context")
	}

	logger := hclog.NewNullLogger()
	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Errorf("expected logger from context")
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		level   string
		visible bool
	}{
		{name: "test_debug_level", level: "debug", visible: true},
		{name: "test_warn_level", level: "warn", visible: false},
		{name: "test_unknown_level_falls_back_to_info", level: "chatty", visible: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger("test", tc.level, &buf)
			logger.Debug("hidden detail")
			logger.Error("always")

			if got := strings.Contains(buf.String(), "hidden detail"); got != tc.visible {
				t.Errorf("debug visibility: want %v, got %v, output %q", tc.visible, got, buf.String())
			}

			if !strings.Contains(buf.String(), "always") {
				t.Errorf("error message missing in output %q", buf.String())
			}
		})
	}
}
