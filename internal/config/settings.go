package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings mutations write through to the config file so preferences
// survive the process. They never touch the statistics engine.

// AddCustomTag appends a tag to custom_tags if not already present.
func AddCustomTag(v *viper.Viper, tag string) error {
	if tag == "" {
		return fmt.Errorf("empty tag")
	}
	tags := v.GetStringSlice("custom_tags")
	for _, t := range tags {
		if t == tag {
			return nil
		}
	}
	v.Set("custom_tags", append(tags, tag))
	return Save(v)
}

// RemoveCustomTag deletes a tag from custom_tags.
func RemoveCustomTag(v *viper.Viper, tag string) error {
	tags := v.GetStringSlice("custom_tags")
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	v.Set("custom_tags", out)
	return Save(v)
}

// SetPIN enables the startup gate with a digest of the given PIN.
func SetPIN(v *viper.Viper, pin string) error {
	if len(pin) != PINLength {
		return fmt.Errorf("pin must be exactly %d characters", PINLength)
	}
	v.Set("security.pin_enabled", true)
	v.Set("security.pin_hash", HashPIN(pin))
	return Save(v)
}

// DisablePIN turns the gate off and clears the stored digest.
func DisablePIN(v *viper.Viper) error {
	v.Set("security.pin_enabled", false)
	v.Set("security.pin_hash", "")
	return Save(v)
}

// Save writes the current settings to the used config file, falling
// back to the default path when none was loaded.
func Save(v *viper.Viper) error {
	path := v.ConfigFileUsed()
	if path == "" {
		path = DefaultConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return v.WriteConfigAs(path)
}
