package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	loopconfig "github.com/tomz197/dodger/internal/loop/config"
)

// Tuning holds the gameplay parameters of a run.
type Tuning struct {
	Field      FieldTuning      `yaml:"field"`
	Player     PlayerTuning     `yaml:"player"`
	Obstacle   ObstacleTuning   `yaml:"obstacle"`
	Difficulty DifficultyTuning `yaml:"difficulty"`
}

// FieldTuning is the play-field size in logical units.
type FieldTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerTuning describes the player sprite and its movement.
type PlayerTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"` // Gap above the field bottom
	Step   float64 `yaml:"step"`   // Distance per key press
}

// ObstacleTuning describes the falling obstacles.
type ObstacleTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DifficultyTuning controls fall speed, spawn pacing and escalation.
// Durations are written as Go duration strings ("500ms").
type DifficultyTuning struct {
	InitialFallSpeed     float64       `yaml:"initialFallSpeed"`
	FallSpeedIncrement   float64       `yaml:"fallSpeedIncrement"`
	InitialSpawnInterval time.Duration `yaml:"initialSpawnInterval"`
	SpawnIntervalStep    time.Duration `yaml:"spawnIntervalStep"`
	MinSpawnInterval     time.Duration `yaml:"minSpawnInterval"`
	LevelEvery           int           `yaml:"levelEvery"`
}

// DefaultTuning returns the built-in tuning.
func DefaultTuning() Tuning {
	return Tuning{
		Field: FieldTuning{
			Width:  loopconfig.FieldWidth,
			Height: loopconfig.FieldHeight,
		},
		Player: PlayerTuning{
			Width:  loopconfig.PlayerWidth,
			Height: loopconfig.PlayerHeight,
			Margin: loopconfig.PlayerMargin,
			Step:   loopconfig.PlayerStep,
		},
		Obstacle: ObstacleTuning{
			Width:  loopconfig.ObstacleWidth,
			Height: loopconfig.ObstacleHeight,
		},
		Difficulty: DifficultyTuning{
			InitialFallSpeed:     loopconfig.InitialFallSpeed,
			FallSpeedIncrement:   loopconfig.FallSpeedIncrement,
			InitialSpawnInterval: loopconfig.InitialSpawnInterval,
			SpawnIntervalStep:    loopconfig.SpawnIntervalStep,
			MinSpawnInterval:     loopconfig.MinSpawnInterval,
			LevelEvery:           loopconfig.LevelEvery,
		},
	}
}

// LoadTuning reads a YAML tuning file. Fields missing from the file keep
// their default values.
func LoadTuning(filePath string) (Tuning, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes YAML tuning data over the defaults and validates it.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // a misspelled key must not silently keep its default
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// Validate checks that the tuning describes a playable field.
func (t Tuning) Validate() error {
	if t.Field.Width <= 0 || t.Field.Height <= 0 {
		return fmt.Errorf("field size must be positive, got %vx%v", t.Field.Width, t.Field.Height)
	}
	if t.Player.Width <= 0 || t.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %vx%v", t.Player.Width, t.Player.Height)
	}
	if t.Player.Width > t.Field.Width {
		return fmt.Errorf("player width %v exceeds field width %v", t.Player.Width, t.Field.Width)
	}
	if t.Player.Margin < 0 || t.Player.Margin+t.Player.Height > t.Field.Height {
		return fmt.Errorf("player does not fit the field height with margin %v", t.Player.Margin)
	}
	if t.Player.Step <= 0 {
		return fmt.Errorf("player step must be positive, got %v", t.Player.Step)
	}
	if t.Obstacle.Width <= 0 || t.Obstacle.Height <= 0 {
		return fmt.Errorf("obstacle size must be positive, got %vx%v", t.Obstacle.Width, t.Obstacle.Height)
	}
	if t.Obstacle.Width > t.Field.Width {
		return fmt.Errorf("obstacle width %v exceeds field width %v", t.Obstacle.Width, t.Field.Width)
	}

	return t.Difficulty.Validate()
}

// Validate checks that escalation keeps the game playable.
func (d DifficultyTuning) Validate() error {
	if d.InitialFallSpeed <= 0 {
		return fmt.Errorf("initialFallSpeed must be positive, got %v", d.InitialFallSpeed)
	}
	if d.FallSpeedIncrement < 0 {
		return fmt.Errorf("fallSpeedIncrement cannot be negative, got %v", d.FallSpeedIncrement)
	}
	if d.SpawnIntervalStep < 0 {
		return fmt.Errorf("spawnIntervalStep cannot be negative, got %v", d.SpawnIntervalStep)
	}
	if d.MinSpawnInterval <= 0 {
		return fmt.Errorf("minSpawnInterval must be positive, got %v", d.MinSpawnInterval)
	}
	if d.InitialSpawnInterval < d.MinSpawnInterval {
		return fmt.Errorf("initialSpawnInterval %v is below minSpawnInterval %v", d.InitialSpawnInterval, d.MinSpawnInterval)
	}
	if d.LevelEvery <= 0 {
		return fmt.Errorf("levelEvery must be positive, got %d", d.LevelEvery)
	}
	return nil
}
