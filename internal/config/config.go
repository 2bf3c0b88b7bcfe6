package config

import (
	"os"
	"path/filepath"

	"mysterycheck/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Database DatabaseConfig
	Output   OutputConfig
	Server   ServerConfig
}

// DataConfig holds the locations of the three exported dataset files
type DataConfig struct {
	Dir            string
	CharactersFile string
	EvidenceFile   string
	DialogueFile   string
}

// DatabaseConfig holds optional database connection settings. When URL is
// set, the dataset loads from Postgres instead of the flat files.
type DatabaseConfig struct {
	URL string
}

// OutputConfig holds report output settings
type OutputConfig struct {
	Dir string
}

// ServerConfig holds dashboard server settings
type ServerConfig struct {
	Port string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	dataDir := getEnvOrDefault("MYSTERY_DATA_DIR", "data/exported")

	config := &Config{
		Data: DataConfig{
			Dir:            dataDir,
			CharactersFile: getEnvOrDefault("MYSTERY_CHARACTERS_FILE", filepath.Join(dataDir, "characters.csv")),
			EvidenceFile:   getEnvOrDefault("MYSTERY_EVIDENCE_FILE", filepath.Join(dataDir, "scene_evidence.csv")),
			DialogueFile:   getEnvOrDefault("MYSTERY_DIALOGUE_FILE", filepath.Join(dataDir, "dialogue.csv")),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Output: OutputConfig{
			Dir: getEnvOrDefault("MYSTERY_OUTPUT_DIR", "reports"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Database.URL != "" {
		return nil // file paths are ignored when loading from the database
	}
	if config.Data.CharactersFile == "" {
		return errors.ConfigInvalid("characters file path is required")
	}
	if config.Data.EvidenceFile == "" {
		return errors.ConfigInvalid("scene evidence file path is required")
	}
	if config.Data.DialogueFile == "" {
		return errors.ConfigInvalid("dialogue file path is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
