package config

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

type Config struct {
	ServerPort               string `json:"server_port"`
	DatabasePath             string `json:"database_path"`
	JWTSecret                string `json:"jwt_secret"`
	Production               bool   `json:"production"`
	SessionDurationHours     int    `json:"session_duration_hours"`
	ReminderIntervalSeconds  int    `json:"reminder_interval_seconds"`
	ReminderLookaheadMinutes int    `json:"reminder_lookahead_minutes"`
}

var (
	instance *Config
	once     sync.Once
)

func generateSecret(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)
}

func getConfigPath() string {
	configDir := os.Getenv("ALMANAC_CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			configDir = "."
		} else {
			configDir = filepath.Join(homeDir, ".almanac")
		}
	}
	return filepath.Join(configDir, "config.json")
}

func GetConfig() *Config {
	once.Do(func() {
		instance = &Config{
			ServerPort:   "8080",
			DatabasePath: "",
			JWTSecret:    "",
			Production:   false,
		}

		configPath := getConfigPath()

		// Try to load existing config
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, instance); err != nil {
				// Config file is corrupted, will use defaults
			}
		}

		// Set defaults
		if instance.SessionDurationHours == 0 {
			instance.SessionDurationHours = 24
		}
		if instance.ReminderIntervalSeconds == 0 {
			instance.ReminderIntervalSeconds = 60
		}
		if instance.ReminderLookaheadMinutes == 0 {
			instance.ReminderLookaheadMinutes = 30
		}

		// Generate secrets if not set
		needsSave := false
		if instance.JWTSecret == "" {
			instance.JWTSecret = generateSecret(32)
			needsSave = true
		}
		if instance.DatabasePath == "" {
			configDir := filepath.Dir(configPath)
			instance.DatabasePath = filepath.Join(configDir, "events.db")
			needsSave = true
		}

		// Override with environment variables
		if port := os.Getenv("ALMANAC_PORT"); port != "" {
			instance.ServerPort = port
		}
		if dbPath := os.Getenv("ALMANAC_DB_PATH"); dbPath != "" {
			instance.DatabasePath = dbPath
		}
		if os.Getenv("ALMANAC_PRODUCTION") == "true" {
			instance.Production = true
		}
		if lookahead := os.Getenv("ALMANAC_REMINDER_LOOKAHEAD_MINUTES"); lookahead != "" {
			if v, err := strconv.Atoi(lookahead); err == nil && v > 0 {
				instance.ReminderLookaheadMinutes = v
			}
		}

		// Save config if we generated new secrets
		if needsSave {
			instance.Save()
		}
	})

	return instance
}

func (c *Config) Save() error {
	configPath := getConfigPath()

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}
