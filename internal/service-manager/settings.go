package service_manager

import (
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Settings holds the integration and sync flags of one dashboard client.
type Settings struct {
	UptimeKumaURL    string `yaml:"uptime_kuma_url"`
	UptimeKumaAPIKey string `yaml:"uptime_kuma_api_key"`
	AutoSync         bool   `yaml:"auto_sync"`
	AuthentikURL     string `yaml:"authentik_url,omitempty"`
	AuthentikAPIKey  string `yaml:"authentik_api_key,omitempty"`
}

func (s Settings) UptimeKumaConfigured() bool {
	return s.UptimeKumaURL != "" && s.UptimeKumaAPIKey != ""
}

// WithIntegrations fills endpoints missing locally from the integrations stored on the server.
func (s Settings) WithIntegrations(i model.Integrations) Settings {
	if !s.UptimeKumaConfigured() && i.UptimeKuma.Configured() {
		s.UptimeKumaURL = i.UptimeKuma.URL
		s.UptimeKumaAPIKey = i.UptimeKuma.APIKey
	}
	if s.AuthentikURL == "" && i.Authentik.Configured() {
		s.AuthentikURL = i.Authentik.URL
		s.AuthentikAPIKey = i.Authentik.APIKey
	}
	return s
}

// LoadSettings returns the zero Settings when nothing has been saved yet.
func LoadSettings(storage LocalStorage) (Settings, error) {
	var s Settings
	b, ok, err := storage.Get(SettingsKey)
	if err != nil {
		return s, fmt.Errorf("LoadSettings: %w", err)
	}
	if !ok {
		return s, nil
	}
	if err = yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("LoadSettings: %w", err)
	}
	return s, nil
}

func SaveSettings(storage LocalStorage, s Settings) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("SaveSettings: %w", err)
	}
	if err = storage.Set(SettingsKey, b); err != nil {
		return fmt.Errorf("SaveSettings: %w", err)
	}
	return nil
}
