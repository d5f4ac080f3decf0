// Package settings is the typed adapter between the application and the
// key-value store. Every key tolerates absence and malformed content by
// falling back to its documented default; no read here ever fails.
package settings

import (
	"encoding/json"
	"strings"

	"tableflip.dev/daygrid/pkg/schedule"
	"tableflip.dev/daygrid/pkg/store"
)

// Storage keys. Values are JSON blobs unless noted as scalar strings.
const (
	KeyUserFont    = "userFont"  // scalar
	KeyFontVars    = "fontVars"
	KeyBG          = "bgSettings"
	KeyClockMode   = "clockMode"  // scalar
	KeyCellColour  = "cellColour" // scalar
	KeyCellColours = "cellColours"
	KeyBlocks      = "blockSubjects"
	KeyInserts     = "inserts"
	KeyUserData    = "userData"
	KeyHelpTip     = "helpTipShownDate" // scalar
	KeyGoodToGo    = "goodToGoSeenDate" // scalar
	KeySavedStyles = "savedStyles"
	KeyShortcuts   = "hypershortcuts"

	// keyHelpTipLegacy was a second help flag written by older stores;
	// only cleared on reset, never read or written otherwise.
	keyHelpTipLegacy = "helpTipSeenDate"
)

// AllKeys lists every key a full reset clears.
var AllKeys = []string{
	KeyUserData, KeyBlocks, KeyInserts,
	KeyHelpTip, keyHelpTipLegacy, KeyGoodToGo,
	KeyBG, KeyUserFont, KeyFontVars, KeyClockMode,
	KeyCellColour, KeyCellColours, KeySavedStyles, KeyShortcuts,
}

// Settings wraps a Persistence with typed, default-tolerant accessors.
type Settings struct {
	p store.Persistence
}

// New returns a Settings adapter over p.
func New(p store.Persistence) *Settings {
	return &Settings{p: p}
}

// Load unmarshals the JSON value stored under key into v. It returns
// false when the key is absent or holds malformed JSON; v is untouched
// in that case so callers keep their defaults.
func (s *Settings) Load(key string, v interface{}) bool {
	data, ok := s.p.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false
	}
	return true
}

// Save marshals v as JSON under key. The write is flushed before Save
// returns.
func (s *Settings) Save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.p.Set(key, data)
}

// GetString reads a scalar string key, empty when absent.
func (s *Settings) GetString(key string) string {
	data, ok := s.p.Get(key)
	if !ok {
		return ""
	}
	return string(data)
}

// SetString writes a scalar string key.
func (s *Settings) SetString(key, val string) error {
	return s.p.Set(key, []byte(val))
}

// Remove deletes a key; removing an absent key is a no-op.
func (s *Settings) Remove(key string) error {
	return s.p.Delete(key)
}

// ResetAll clears every persisted key.
func (s *Settings) ResetAll() error {
	for _, key := range AllKeys {
		if err := s.p.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

type userData struct {
	Name string `json:"name"`
}

// Name returns the registered user name, empty when unset.
func (s *Settings) Name() string {
	var u userData
	if !s.Load(KeyUserData, &u) {
		return ""
	}
	return strings.TrimSpace(u.Name)
}

// SetName persists the user name.
func (s *Settings) SetName(name string) error {
	return s.Save(KeyUserData, userData{Name: name})
}

// Blocks returns the block assignment, placeholders for any block the
// user has not configured. Keys are always exactly 1 through 6.
func (s *Settings) Blocks() map[int]string {
	blocks := schedule.DefaultBlocks()
	stored := map[int]string{}
	if s.Load(KeyBlocks, &stored) {
		for n, subj := range stored {
			if n >= 1 && n <= 6 && subj != "" {
				blocks[n] = subj
			}
		}
	}
	return blocks
}

// SetBlock assigns a subject to block n and persists the full mapping.
func (s *Settings) SetBlock(n int, subject string) error {
	blocks := s.Blocks()
	blocks[n] = subject
	return s.Save(KeyBlocks, blocks)
}

// BlocksSet reports whether every block has a real subject assigned.
func (s *Settings) BlocksSet() bool {
	for _, subj := range s.Blocks() {
		if schedule.IsPlaceholder(subj) {
			return false
		}
	}
	return true
}

// Inserts returns the persisted override set, empty maps when unset.
func (s *Settings) Inserts() schedule.Inserts {
	ins := schedule.NewInserts()
	s.Load(KeyInserts, &ins)
	if ins.P0 == nil {
		ins.P0 = map[int]string{}
	}
	if ins.Free == nil {
		ins.Free = map[string]bool{}
	}
	return ins
}

// SetInserts persists the override set.
func (s *Settings) SetInserts(ins schedule.Inserts) error {
	return s.Save(KeyInserts, ins)
}

// HelpTipShown reports whether the help tip was already shown on the
// day identified by todayKey.
func (s *Settings) HelpTipShown(todayKey string) bool {
	return s.GetString(KeyHelpTip) == todayKey
}

// MarkHelpTipShown stamps the help tip as shown for todayKey.
func (s *Settings) MarkHelpTipShown(todayKey string) error {
	return s.SetString(KeyHelpTip, todayKey)
}

// GoodToGoSeen reports whether the good-to-go prompt was dismissed on
// the day identified by todayKey.
func (s *Settings) GoodToGoSeen(todayKey string) bool {
	return s.GetString(KeyGoodToGo) == todayKey
}

// MarkGoodToGo stamps the good-to-go prompt for todayKey.
func (s *Settings) MarkGoodToGo(todayKey string) error {
	return s.SetString(KeyGoodToGo, todayKey)
}

// Shortcuts returns the hypershortcut mapping, empty when unset.
func (s *Settings) Shortcuts() map[string]string {
	out := map[string]string{}
	s.Load(KeyShortcuts, &out)
	return out
}

// SetShortcuts persists the hypershortcut mapping.
func (s *Settings) SetShortcuts(m map[string]string) error {
	return s.Save(KeyShortcuts, m)
}
