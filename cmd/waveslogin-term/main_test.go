package main

import (
	"path/filepath"
	"testing"
	"time"

	"waveslogin/internal/ui/preferences"
)

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantWave  time.Duration
		wantDelay time.Duration
	}{
		{"NoFlags", nil, 3 * time.Second, 2 * time.Second},
		{"WaveOnly", []string{"--wave-duration", "4500"}, 4500 * time.Millisecond, 2 * time.Second},
		{"ZeroDelay", []string{"--check-delay", "0"}, 3 * time.Second, 0},
		{"OutOfRangeFallsBack", []string{"--wave-duration=5", "--check-delay=-1"}, 3 * time.Second, 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			opts := &options{}
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags: %v", err)
			}
			opts.waveMillis, _ = cmd.Flags().GetInt("wave-duration")
			opts.delayMillis, _ = cmd.Flags().GetInt("check-delay")

			got := applyFlags(cmd, preferences.DefaultSettings(), opts)
			if got.WaveDuration != tt.wantWave || got.CheckDelay != tt.wantDelay {
				t.Errorf("applyFlags() = %+v, want wave %v delay %v", got, tt.wantWave, tt.wantDelay)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, closeLog, err := newLogger("")
	if err != nil || logger == nil {
		t.Fatalf("newLogger(\"\") = %v, %v", logger, err)
	}
	closeLog()

	path := filepath.Join(t.TempDir(), "term.log")
	logger, closeLog, err = newLogger(path)
	if err != nil {
		t.Fatalf("newLogger(%q): %v", path, err)
	}
	logger.Info("hello")
	closeLog()

	if _, _, err := newLogger(filepath.Join(t.TempDir(), "missing", "term.log")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
