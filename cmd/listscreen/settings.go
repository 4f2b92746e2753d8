package main

import (
	"log"

	"github.com/ayn2op/listscreen"
	"github.com/ayn2op/listscreen/store"
)

// Settings keys.
const (
	keyVibrate = "vibrate"
	keyTheme   = "theme"
	keyWrist   = "wrist"
	keyTaps    = "sync_taps"
)

var defaultSettings = map[string]any{
	keyVibrate: true,
	keyTheme:   "dark",
	keyWrist:   0,
	keyTaps:    0,
}

// settingsScreen is a device settings list built from every recipe.
type settingsScreen struct {
	engine   *listscreen.Engine
	settings *store.Store
	logger   *log.Logger
}

func newSettingsScreen(engine *listscreen.Engine, settings *store.Store, logger *log.Logger) *settingsScreen {
	return &settingsScreen{engine: engine, settings: settings, logger: logger}
}

func (s *settingsScreen) Start() {
	e := s.engine

	e.Headline("Connectivity")
	e.Row(listscreen.RowConfig{
		Text:        "Bluetooth",
		Description: "Connected to phone",
		Icon:        "bluetooth",
		OnTap:       func() { s.logger.Print("bluetooth tapped") },
	})
	e.Row(listscreen.RowConfig{
		Text: "Wi-Fi",
		Icon: "wifi",
		Card: &listscreen.RowCard{
			HiddenButton:   "Forget",
			OnHiddenButton: func() { s.logger.Print("forget wi-fi") },
		},
	})
	e.CheckboxRow(listscreen.CheckboxConfig{
		Value:       store.Value(s.settings, keyVibrate, true),
		IconTrue:    "checkbox_on",
		IconFalse:   "checkbox_off",
		Text:        "Vibrate on notifications",
		Description: "Short pulse for every message",
		OnChange:    func(v bool) { s.save(keyVibrate, v) },
	})

	e.Headline("Theme")
	listscreen.ToggleGroup(e, listscreen.ToggleGroupConfig[string]{
		Value:     store.Value(s.settings, keyTheme, "dark"),
		IconTrue:  "radio_on",
		IconFalse: "radio_off",
		Options: []listscreen.ToggleOption[string]{
			{Name: "Dark", Value: "dark"},
			{Name: "Light", Value: "light"},
			{Name: "Follow phone", Value: "auto"},
		},
		OnChange: func(v string) { s.save(keyTheme, v) },
	})

	e.Headline("Wrist")
	listscreen.ToggleGroup(e, listscreen.ToggleGroupConfig[int]{
		Value:     store.Value(s.settings, keyWrist, 0),
		IconTrue:  "radio_on",
		IconFalse: "radio_off",
		Options: []listscreen.ToggleOption[int]{
			{Name: "Left", Value: 0},
			{Name: "Right", Value: 1},
		},
		OnChange: func(v int) { s.save(keyWrist, v) },
	})

	e.Headline("Device")
	e.Field(listscreen.FieldConfig{Headline: "Battery", Text: "87%"})
	e.Field(listscreen.FieldConfig{Headline: "Firmware", Text: "1.4.2 (build 7731)", Stacked: true})
	e.TwoActionBar(
		listscreen.ActionItem{Text: "Sync now", Icon: "play", OnTap: s.sync},
		listscreen.ActionItem{Text: "Settings", Icon: "gear", OnTap: func() { s.logger.Print("open settings") }},
	)
	e.Card(listscreen.CardConfig{
		Height:         e.BaseRowHeight(),
		HiddenButton:   "Reset",
		OnHiddenButton: s.reset,
	})
	e.Image(listscreen.ImageConfig{Width: 48, Height: 48, Src: "info"})
	e.Text(listscreen.TextConfig{
		Text:      "Settings are saved as soon as they change. Reset restores the defaults the next time the screen opens.",
		Align:     listscreen.AlignmentLeft,
		TopOffset: 8,
	})
	e.Offset(0)

	s.logger.Printf("settings screen built: %d entries, %d units tall", e.Len(), e.Cursor())
}

func (s *settingsScreen) sync() {
	taps := store.Value(s.settings, keyTaps, 0) + 1
	s.save(keyTaps, taps)
}

func (s *settingsScreen) reset() {
	if err := s.settings.Wipe(); err != nil {
		s.logger.Printf("reset settings: %v", err)
	}
}

func (s *settingsScreen) save(key string, value any) {
	if err := s.settings.Set(key, value); err != nil {
		s.logger.Printf("save %s: %v", key, err)
	}
}
