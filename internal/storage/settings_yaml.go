package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gomodoro/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes          int    `yaml:"work_minutes"`
	ShortBreakMinutes    int    `yaml:"short_break_minutes"`
	LongBreakMinutes     int    `yaml:"long_break_minutes"`
	SessionsPerLongBreak int    `yaml:"sessions_per_long_break"`
	AutoStartBreaks      *bool  `yaml:"auto_start_breaks"`
	AutoStartWork        *bool  `yaml:"auto_start_work"`
	Notifications        *bool  `yaml:"notifications"`
	SoundEnabled         *bool  `yaml:"sound_enabled"`
	SoundFile            string `yaml:"sound_file"`
	Language             string `yaml:"language"`
	AutostartLogin       *bool  `yaml:"autostart_login"`
}

// LoadSettings reads user preferences from YAML in the user config dir.
// A missing file yields default settings.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// SaveSettings writes user preferences to YAML in the user config dir.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SettingsPath resolves the settings file location for the app.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettingsFile reads user preferences from the given YAML file.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsFile writes user preferences to the given YAML file.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkMinutes:          int(settings.WorkDuration / time.Minute),
		ShortBreakMinutes:    int(settings.ShortBreak / time.Minute),
		LongBreakMinutes:     int(settings.LongBreak / time.Minute),
		SessionsPerLongBreak: settings.SessionsPerLongBreak,
		AutoStartBreaks:      &settings.AutoStartBreaks,
		AutoStartWork:        &settings.AutoStartWork,
		Notifications:        &settings.NotificationsEnabled,
		SoundEnabled:         &settings.SoundEnabled,
		SoundFile:            settings.SoundFile,
		Language:             settings.Language,
		AutostartLogin:       &settings.AutostartLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		settings.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreak = time.Duration(fileData.ShortBreakMinutes) * time.Minute
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreak = time.Duration(fileData.LongBreakMinutes) * time.Minute
	}
	if fileData.SessionsPerLongBreak > 0 {
		settings.SessionsPerLongBreak = fileData.SessionsPerLongBreak
	}
	if fileData.AutoStartBreaks != nil {
		settings.AutoStartBreaks = *fileData.AutoStartBreaks
	}
	if fileData.AutoStartWork != nil {
		settings.AutoStartWork = *fileData.AutoStartWork
	}
	if fileData.Notifications != nil {
		settings.NotificationsEnabled = *fileData.Notifications
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.SoundFile != "" {
		settings.SoundFile = fileData.SoundFile
	}
	if fileData.Language != "" {
		settings.Language = fileData.Language
	}
	if fileData.AutostartLogin != nil {
		settings.AutostartLogin = *fileData.AutostartLogin
	}
}
