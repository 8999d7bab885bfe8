// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Voicing VoicingConfig `toml:"voicing"`
	MIDI    MIDIConfig    `toml:"midi"`
	Serve   ServeConfig   `toml:"serve"`
}

// VoicingConfig maps voicing generation settings.
type VoicingConfig struct {
	Tuning  *string `toml:"tuning"`
	MinFret *uint8  `toml:"min-fret"`
	MaxFret *uint8  `toml:"max-fret"`
	MaxSpan *uint8  `toml:"max-span"`
}

// MIDIConfig maps MIDI export settings.
type MIDIConfig struct {
	Tempo    *float64 `toml:"tempo"`
	Velocity *uint8   `toml:"velocity"`
}

// ServeConfig maps API server settings.
type ServeConfig struct {
	Addr *string `toml:"addr"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
