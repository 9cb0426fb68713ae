package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     ports.LogLevel
		wantOut   []string
		wantErr   []string
		unwantOut []string
	}{
		{
			name:    "debug shows everything",
			level:   ports.LevelDebug,
			wantOut: []string{"debug line", "info line"},
			wantErr: []string{"warn line", "error line"},
		},
		{
			name:      "warn hides debug and info",
			level:     ports.LevelWarn,
			wantErr:   []string{"warn line", "error line"},
			unwantOut: []string{"debug line", "info line"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			log := NewConsoleWriter(tt.level, &out, &errOut, false)

			log.Debug("debug line")
			log.Info("info line")
			log.Warn("warn line")
			log.Error("error line")

			for _, s := range tt.wantOut {
				if !strings.Contains(out.String(), s) {
					t.Errorf("expected stdout to contain %q, got %q", s, out.String())
				}
			}
			for _, s := range tt.wantErr {
				if !strings.Contains(errOut.String(), s) {
					t.Errorf("expected stderr to contain %q, got %q", s, errOut.String())
				}
			}
			for _, s := range tt.unwantOut {
				if strings.Contains(out.String(), s) {
					t.Errorf("expected stdout not to contain %q", s)
				}
			}
		})
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out bytes.Buffer
	log := NewConsoleWriter(ports.LevelDebug, &out, &out, false).WithComponent("purge")

	log.Info("Removed %s", "dirB")

	if got := out.String(); !strings.Contains(got, "[purge] ") || !strings.Contains(got, "dirB") {
		t.Errorf("unexpected output %q", got)
	}
}

func TestConsoleLogger_Color(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelDebug, &out, &errOut, true)

	log.Warn("careful")

	if !strings.HasPrefix(errOut.String(), colorYellow) {
		t.Errorf("expected yellow warning, got %q", errOut.String())
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoop()
	if log.WithComponent("x") != log {
		t.Error("expected WithComponent to return the same logger")
	}
}
