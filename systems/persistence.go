package systems

import (
	"encoding/json"
	"log"

	"github.com/hollowlog/dragtext/components"
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/drag"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the playground settings stored on disk
type SavedSettings struct {
	Text           string  `json:"text"`
	Spacing        float64 `json:"spacing"`
	Direction      int     `json:"direction"`
	VerticalCenter bool    `json:"verticalCenter"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "dragtext",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	settings, err := DecodeSettings(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return settings, nil
}

// SaveSettingsFromRun persists the run's current parameters
func SaveSettingsFromRun(run *components.RunData) error {
	return saveSettings(&SavedSettings{
		Text:           run.Text,
		Spacing:        run.Spacing,
		Direction:      int(run.Direction),
		VerticalCenter: run.VerticalCenter,
	})
}

func saveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// DecodeSettings parses the persisted JSON payload.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// ApplySavedSettingsGlobal folds saved settings into the config defaults so
// new playground scenes start from them. Out-of-range values degrade to the
// defaults rather than failing.
func ApplySavedSettingsGlobal(s *SavedSettings) {
	if s == nil {
		return
	}
	if s.Text != "" {
		cfg.Text.DefaultText = s.Text
	}
	if s.Spacing >= cfg.Text.MinSpacing && s.Spacing <= cfg.Text.MaxSpacing {
		cfg.Text.Spacing = s.Spacing
	}
	if s.Direction >= int(drag.AxisBoth) && s.Direction <= int(drag.AxisVertical) {
		SavedDirection = drag.Axis(s.Direction)
	}
	cfg.Text.VerticalCenter = s.VerticalCenter
}

// SavedDirection is the drag axis restored from disk (default both).
var SavedDirection = drag.AxisBoth
