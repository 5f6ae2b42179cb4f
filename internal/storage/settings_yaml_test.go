package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"waveslogin/internal/ui/preferences"
)

func TestStore_LoadMissingReturnsDefaults(t *testing.T) {
	store := NewStore(t.TempDir())
	settings, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("Load() = %+v, want defaults", settings)
	}
}

func TestStore_SaveThenLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested"))
	want := preferences.Settings{
		WaveDuration: 4200 * time.Millisecond,
		CheckDelay:   0,
		Fullscreen:   true,
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestStore_LoadFile(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantWave  time.Duration
		wantDelay time.Duration
		wantErr   bool
	}{
		{"Partial", "wave_duration_ms: 5000\n", 5 * time.Second, 2 * time.Second, false},
		{"OutOfRange", "wave_duration_ms: 10\ncheck_delay_ms: 999999\n", 3 * time.Second, 2 * time.Second, false},
		{"ZeroDelay", "check_delay_ms: 0\n", 3 * time.Second, 0, false},
		{"Invalid", "wave_duration_ms: [\n", 3 * time.Second, 2 * time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			settings, err := NewStore(dir).Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() err = %v, wantErr %v", err, tt.wantErr)
			}
			if settings.WaveDuration != tt.wantWave || settings.CheckDelay != tt.wantDelay {
				t.Errorf("Load() = %+v, want wave %v delay %v", settings, tt.wantWave, tt.wantDelay)
			}
		})
	}
}
