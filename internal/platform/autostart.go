package platform

import (
	"fmt"
	"os"
	"strings"
)

// Service exposes the OS integration the timer needs beyond the UI
// toolkit: config directory resolution and login autostart.
type Service interface {
	ConfigDir() (string, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
}

// NewService returns the implementation for the current OS.
func NewService() Service {
	return osService{}
}

type osService struct{}

func (osService) ConfigDir() (string, error) {
	return userConfigDir()
}

func userConfigDir() (string, error) {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return fallbackConfigDir(homeDir), nil
}

// appSlug normalizes an app name for use in file names and labels.
func appSlug(appName string) string {
	slug := strings.ToLower(strings.TrimSpace(appName))
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		return "gomodoro"
	}
	return slug
}
