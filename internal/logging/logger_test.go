package logging

import (
	"log/slog"
	"testing"
)

func TestLevelFromEnv(t *testing.T) {
	cases := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"not-a-level", slog.LevelInfo},
	}
	for _, tc := range cases {
		t.Setenv("LOG_LEVEL", tc.value)
		if got := levelFromEnv(); got != tc.want {
			t.Errorf("LOG_LEVEL=%q: got %v, want %v", tc.value, got, tc.want)
		}
	}
}
