// Package settings persists player preferences in the per-user data directory.
package settings

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application key; it names the data directory.
const AppName = "catburglar"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings are the persisted preferences.
type Settings struct {
	Fullscreen  bool `yaml:"fullscreen"`
	WindowScale int  `yaml:"window_scale"`
}

func Default() Settings {
	return Settings{WindowScale: 2}
}

// Manager loads and saves Settings. A Manager without storage keeps settings in memory.
type Manager struct {
	data     *gdata.Manager
	settings Settings
	logger   *log.Logger
}

// Open creates a Manager on the platform data directory. When that directory is
// unavailable it logs a warning and falls back to memory.
func Open(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	data, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		logger.Warn("settings storage unavailable", "error", err)
		data = nil
	}
	return New(data, logger)
}

// New wraps an existing gdata manager, which may be nil.
func New(data *gdata.Manager, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	m := &Manager{data: data, settings: Default(), logger: logger}
	if err := m.Load(); err != nil {
		logger.Warn("failed to load settings, using defaults", "error", err)
	}
	return m
}

func (m *Manager) Load() error {
	m.settings = Default()
	if m.data == nil || !m.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	raw, err := m.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}
	var loaded Settings
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("settings: unmarshal: %w", err)
	}
	m.settings = loaded.normalized()
	return nil
}

func (m *Manager) Save() error {
	if m.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := m.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	m.logger.Debug("settings saved", "fullscreen", m.settings.Fullscreen, "window_scale", m.settings.WindowScale)
	return nil
}

func (m *Manager) Get() Settings {
	return m.settings
}

// Persistent reports whether saves reach disk.
func (m *Manager) Persistent() bool {
	return m.data != nil
}

func (m *Manager) SetFullscreen(enabled bool) {
	m.settings.Fullscreen = enabled
}

// ToggleFullscreen flips fullscreen, saves, and returns the new value.
func (m *Manager) ToggleFullscreen() (bool, error) {
	m.settings.Fullscreen = !m.settings.Fullscreen
	return m.settings.Fullscreen, m.Save()
}

func (m *Manager) SetWindowScale(scale int) {
	m.settings.WindowScale = scale
	m.settings = m.settings.normalized()
}

func (s Settings) normalized() Settings {
	switch {
	case s.WindowScale < 1:
		s.WindowScale = 1
	case s.WindowScale > 6:
		s.WindowScale = 6
	}
	return s
}
