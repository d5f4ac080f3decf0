// Package style resolves the visual customization state: fonts, text
// colors, background, clock format, and per-subject cell colours. A
// Snapshot is the whole set treated as one unit for save/load/reset.
package style

import (
	"regexp"
	"strings"

	"tableflip.dev/daygrid/pkg/settings"
)

// Defaults applied wherever a stored value is absent.
const (
	DefaultFont       = "monospace"
	DefaultClockMode  = "12"
	DefaultCellColour = "#ffffff"
)

// Font variable targets, fixed keys.
var fontVarDefaults = map[string]string{
	"search-text-color":   "#ffffff",
	"search-text-outline": "none",
	"clock-text-color":    "#ffffff",
	"clock-text-outline":  "none",
	"date-text-color":     "#ffffff",
	"date-text-outline":   "none",
}

// DefaultFontVars returns a fresh copy of the six font variables.
func DefaultFontVars() map[string]string {
	out := make(map[string]string, len(fontVarDefaults))
	for k, v := range fontVarDefaults {
		out[k] = v
	}
	return out
}

// FontVarDefault returns the default for one font variable key.
func FontVarDefault(key string) string {
	return fontVarDefaults[key]
}

// KnownFontVar reports whether key is one of the six fixed variables.
func KnownFontVar(key string) bool {
	_, ok := fontVarDefaults[key]
	return ok
}

// Background modes.
const (
	ModeFluid = "fluid"
	ModeColor = "color"
	ModeImage = "image"
)

// BG holds the background settings. Exactly one of Color or Image is
// meaningful depending on Mode; fluid uses neither beyond the fixed
// backdrop asset.
type BG struct {
	Mode     string `json:"mode"`
	Color    string `json:"color"`
	Image    string `json:"image"`
	Parallax bool   `json:"parallax"`
}

// DefaultBG is the out-of-the-box background.
func DefaultBG() BG {
	return BG{Mode: ModeFluid, Color: "", Image: "bg.png", Parallax: false}
}

// Snapshot is the full style state, merged with defaults so every field
// is populated.
type Snapshot struct {
	UserFont    string            `json:"userFont"`
	FontVars    map[string]string `json:"fontVars"`
	BG          BG                `json:"bgSettings"`
	ClockMode   string            `json:"clockMode"`
	CellColour  string            `json:"cellColour"`
	CellColours map[string]string `json:"cellColours"`
}

// Current reads the stored style keys and merges them with defaults
// into one coherent snapshot.
func Current(s *settings.Settings) Snapshot {
	snap := Snapshot{
		UserFont:    s.GetString(settings.KeyUserFont),
		FontVars:    map[string]string{},
		BG:          DefaultBG(),
		ClockMode:   s.GetString(settings.KeyClockMode),
		CellColour:  s.GetString(settings.KeyCellColour),
		CellColours: map[string]string{},
	}
	if snap.UserFont == "" {
		snap.UserFont = DefaultFont
	}
	if snap.ClockMode == "" {
		snap.ClockMode = DefaultClockMode
	}
	if snap.CellColour == "" {
		snap.CellColour = DefaultCellColour
	}

	stored := map[string]string{}
	if s.Load(settings.KeyFontVars, &stored) {
		snap.FontVars = stored
	}

	var bg BG
	if s.Load(settings.KeyBG, &bg) && bg.Mode != "" {
		snap.BG = bg
	}

	colours := map[string]string{}
	if s.Load(settings.KeyCellColours, &colours) {
		snap.CellColours = colours
	}

	return snap
}

// EffectiveFontVars overlays the snapshot's stored variables on the
// defaults, yielding all six keys.
func (snap Snapshot) EffectiveFontVars() map[string]string {
	vars := DefaultFontVars()
	for k, v := range snap.FontVars {
		vars[k] = v
	}
	return vars
}

// Apply writes every part of the snapshot back to the store as one
// sequence, so a subsequent Current reproduces it exactly.
func Apply(s *settings.Settings, snap Snapshot) error {
	if snap.UserFont == "" {
		snap.UserFont = DefaultFont
	}
	if snap.ClockMode == "" {
		snap.ClockMode = DefaultClockMode
	}
	if snap.CellColour == "" {
		snap.CellColour = DefaultCellColour
	}
	if snap.BG.Mode == "" {
		snap.BG = DefaultBG()
	}
	if err := s.SetString(settings.KeyUserFont, snap.UserFont); err != nil {
		return err
	}
	if err := s.Save(settings.KeyFontVars, snap.FontVars); err != nil {
		return err
	}
	if err := s.Save(settings.KeyBG, snap.BG); err != nil {
		return err
	}
	if err := s.SetString(settings.KeyClockMode, snap.ClockMode); err != nil {
		return err
	}
	if err := s.SetString(settings.KeyCellColour, snap.CellColour); err != nil {
		return err
	}
	return s.Save(settings.KeyCellColours, snap.CellColours)
}

// Reset clears every style key, restoring defaults on next read.
func Reset(s *settings.Settings) error {
	for _, key := range []string{
		settings.KeyUserFont, settings.KeyFontVars, settings.KeyBG,
		settings.KeyClockMode, settings.KeyCellColour, settings.KeyCellColours,
	} {
		if err := s.Remove(key); err != nil {
			return err
		}
	}
	return nil
}

// Saved returns the named snapshot mapping, empty when unset.
func Saved(s *settings.Settings) map[string]Snapshot {
	out := map[string]Snapshot{}
	s.Load(settings.KeySavedStyles, &out)
	return out
}

// Save stores the current style under name.
func Save(s *settings.Settings, name string) error {
	saved := Saved(s)
	saved[name] = Current(s)
	return s.Save(settings.KeySavedStyles, saved)
}

// Load applies the snapshot stored under name. The second return is
// false when no such snapshot exists.
func Load(s *settings.Settings, name string) (Snapshot, bool, error) {
	saved := Saved(s)
	snap, ok := saved[name]
	if !ok {
		return Snapshot{}, false, nil
	}
	if err := Apply(s, snap); err != nil {
		return Snapshot{}, true, err
	}
	return Current(s), true, nil
}

// Remove deletes the snapshot stored under name, reporting whether it
// existed.
func Remove(s *settings.Settings, name string) (bool, error) {
	saved := Saved(s)
	if _, ok := saved[name]; !ok {
		return false, nil
	}
	delete(saved, name)
	return true, s.Save(settings.KeySavedStyles, saved)
}

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// NormalizeHex lowercases and validates a six-digit hex colour. The
// second return is false when v is not a usable colour value.
func NormalizeHex(v string) (string, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if !hexPattern.MatchString(v) {
		return "", false
	}
	return v, true
}
