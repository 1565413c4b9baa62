package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// Setting keys.
const (
	KeySkin    = "skin"
	KeyMusic   = "music"
	KeyEffects = "sfx"
)

// Setting returns the stored value for key. ok is false when unset.
func (s *Store) Setting(key string) (value string, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %q: %w", key, err)
	}
	return value, true, nil
}

// SetSetting stores value under key, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %q: %w", key, err)
	}
	return nil
}

// Settings are the player preferences the game reads at start-up.
type Settings struct {
	Skin    string // "" selects the default skin
	Music   bool
	Effects bool
}

// DefaultSettings has audio on and the default skin.
func DefaultSettings() Settings {
	return Settings{Music: true, Effects: true}
}

// LoadSettings reads all preferences, using defaults for unset or
// unparsable keys.
func (s *Store) LoadSettings() (Settings, error) {
	out := DefaultSettings()

	if v, ok, err := s.Setting(KeySkin); err != nil {
		return out, err
	} else if ok {
		out.Skin = v
	}

	for key, dst := range map[string]*bool{KeyMusic: &out.Music, KeyEffects: &out.Effects} {
		v, ok, err := s.Setting(key)
		if err != nil {
			return out, err
		}
		if !ok {
			continue
		}
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
	return out, nil
}

// SaveSettings writes every preference.
func (s *Store) SaveSettings(st Settings) error {
	if err := s.SetSetting(KeySkin, st.Skin); err != nil {
		return err
	}
	if err := s.SetSetting(KeyMusic, strconv.FormatBool(st.Music)); err != nil {
		return err
	}
	return s.SetSetting(KeyEffects, strconv.FormatBool(st.Effects))
}
