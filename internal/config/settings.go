package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"match-notify-service/internal/notify"
)

// Settings is the operator-provided YAML file carrying everything that
// does not fit an environment variable: where to deliver notifications
// and how to present them.
type Settings struct {
	Destinations []notify.Destination `yaml:"destinations"`
	Payload      PayloadSettings      `yaml:"payload"`
	// HoursToAdd shifts displayed kickoff times when the host clock and
	// the audience are in different timezones.
	HoursToAdd int `yaml:"hours_to_add"`
	// MessagesPerSecond throttles outbound webhook posts. Zero means
	// no throttle.
	MessagesPerSecond float64 `yaml:"messages_per_second"`
}

// PayloadSettings are static fields merged into every webhook post.
type PayloadSettings struct {
	Username  string `yaml:"username"`
	IconEmoji string `yaml:"icon_emoji"`
}

// LoadSettings parses the settings file. An empty path yields empty
// settings (the service runs, it just notifies nobody); a configured but
// unreadable file is a startup error.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		return Settings{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse settings file: %w", err)
	}

	for i, dest := range settings.Destinations {
		if dest.Webhook == "" {
			return Settings{}, fmt.Errorf("settings destination %d: missing webhook", i)
		}
		if dest.Name == "" {
			settings.Destinations[i].Name = fmt.Sprintf("destination-%d", i)
		}
	}

	return settings, nil
}
