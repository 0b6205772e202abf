package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestParseTuning(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, Tuning)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
difficulty:
  initialSpawnInterval: 800ms
  minSpawnInterval: 300ms
  levelEvery: 3
`,
			validate: func(t *testing.T, tu Tuning) {
				def := DefaultTuning()
				if tu.Difficulty.InitialSpawnInterval != 800*time.Millisecond {
					t.Errorf("expected initialSpawnInterval = 800ms, got %v", tu.Difficulty.InitialSpawnInterval)
				}
				if tu.Difficulty.MinSpawnInterval != 300*time.Millisecond {
					t.Errorf("expected minSpawnInterval = 300ms, got %v", tu.Difficulty.MinSpawnInterval)
				}
				if tu.Difficulty.LevelEvery != 3 {
					t.Errorf("expected levelEvery = 3, got %d", tu.Difficulty.LevelEvery)
				}
				if tu.Field != def.Field {
					t.Errorf("expected default field %v, got %v", def.Field, tu.Field)
				}
				if tu.Player != def.Player {
					t.Errorf("expected default player %v, got %v", def.Player, tu.Player)
				}
			},
		},
		{
			name: "full file",
			yamlContent: `
field: {width: 200, height: 300}
player: {width: 20, height: 10, margin: 5, step: 8}
obstacle: {width: 25, height: 25}
difficulty:
  initialFallSpeed: 2
  fallSpeedIncrement: 1
  initialSpawnInterval: 1s
  spawnIntervalStep: 250ms
  minSpawnInterval: 250ms
  levelEvery: 10
`,
			validate: func(t *testing.T, tu Tuning) {
				if tu.Field.Width != 200 || tu.Field.Height != 300 {
					t.Errorf("unexpected field %v", tu.Field)
				}
				if tu.Player.Step != 8 {
					t.Errorf("expected step = 8, got %v", tu.Player.Step)
				}
				if tu.Difficulty.SpawnIntervalStep != 250*time.Millisecond {
					t.Errorf("expected spawnIntervalStep = 250ms, got %v", tu.Difficulty.SpawnIntervalStep)
				}
			},
		},
		{
			name: "floor above initial interval",
			yamlContent: `
difficulty:
  initialSpawnInterval: 200ms
  minSpawnInterval: 500ms
`,
			wantErr:     true,
			errContains: "below minSpawnInterval",
		},
		{
			name: "obstacle wider than field",
			yamlContent: `
field: {width: 40}
player: {width: 10}
`,
			wantErr:     true,
			errContains: "obstacle width",
		},
		{
			name: "negative speed increment",
			yamlContent: `
difficulty:
  fallSpeedIncrement: -1
`,
			wantErr:     true,
			errContains: "fallSpeedIncrement",
		},
		{
			name: "misspelled key",
			yamlContent: `
difficulty:
  levelEvry: 3
`,
			wantErr:     true,
			errContains: "levelEvry",
		},
		{
			name:        "empty file keeps defaults",
			yamlContent: "",
			validate: func(t *testing.T, tu Tuning) {
				if tu != DefaultTuning() {
					t.Errorf("expected defaults, got %+v", tu)
				}
			},
		},
		{
			name:        "malformed yaml",
			yamlContent: "field: [",
			wantErr:     true,
			errContains: "failed to parse tuning YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu, err := ParseTuning([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, tu)
			}
		})
	}
}

func TestLoadTuning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player:\n  step: 20\n"), 0o644); err != nil {
		t.Fatalf("failed to write tuning file: %v", err)
	}

	tu, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tu.Player.Step != 20 {
		t.Errorf("expected step = 20, got %v", tu.Player.Step)
	}

	if _, err := LoadTuning(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestClassicTuningFile(t *testing.T) {
	tu, err := LoadTuning(filepath.Join("..", "..", "configs", "classic.yaml"))
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	d := tu.Difficulty
	if d.InitialSpawnInterval != 500*time.Millisecond || d.MinSpawnInterval != 500*time.Millisecond {
		t.Errorf("spawn interval = %v (floor %v), want 500ms/500ms", d.InitialSpawnInterval, d.MinSpawnInterval)
	}
	if d.InitialFallSpeed != 3 || d.FallSpeedIncrement != 0.5 || d.LevelEvery != 5 {
		t.Errorf("unexpected classic difficulty %+v", d)
	}
}

func TestGameTuning(t *testing.T) {
	tu, err := Game{}.Tuning()
	if err != nil {
		t.Fatalf("Tuning: %v", err)
	}
	if tu != DefaultTuning() {
		t.Errorf("expected default tuning without DODGER_TUNING")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SSH_PORT", "2323")
	t.Setenv("DODGER_LOG_LEVEL", "debug")

	cfg, err := Load[Server]()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "2323" {
		t.Errorf("expected port 2323, got %q", cfg.Port)
	}
	if cfg.Host != "::" {
		t.Errorf("expected default host, got %q", cfg.Host)
	}
	if cfg.Game.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Game.LogLevel)
	}
}

func TestNewLogger(t *testing.T) {
	dir := t.TempDir()
	g := Game{LogLevel: "info", LogFile: filepath.Join(dir, "game.log")}

	logger, closeFn, err := g.NewLogger(os.Stderr)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("hello", "score", 3)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(g.LogFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing message: %q", data)
	}

	if _, _, err := (Game{LogLevel: "loud"}).NewLogger(os.Stderr); err == nil {
		t.Error("expected error for unknown log level")
	}
}
