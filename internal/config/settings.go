package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// AppSettings holds the switches from the admin settings tab. They are the
// only state that survives a restart.
type AppSettings struct {
	EmailNotifications bool `json:"emailNotifications"`
	AutoConfirm        bool `json:"autoConfirm"`
	MaintenanceMode    bool `json:"maintenanceMode"`
}

func GetSettingsPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".bus_ticket", "settings.json")
}

func LoadAppSettings() (*AppSettings, error) {
	path := GetSettingsPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &AppSettings{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings AppSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func SaveAppSettings(settings *AppSettings) error {
	path := GetSettingsPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
