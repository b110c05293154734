package config

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, Load(context.Background(), v))
	return v
}

func TestLoadDefaults(t *testing.T) {
	v := newTestViper(t)
	assert.Equal(t, "en", v.GetString("language"))
	assert.Equal(t, "system", v.GetString("theme"))
	assert.False(t, v.GetBool("security.pin_enabled"))
	assert.NotEmpty(t, v.GetString("data_dir"))
}

func TestCustomTags(t *testing.T) {
	v := newTestViper(t)

	require.NoError(t, AddCustomTag(v, "Vacation"))
	require.NoError(t, AddCustomTag(v, "Vacation"), "duplicate is a no-op")
	require.NoError(t, AddCustomTag(v, "Morning"))
	assert.Equal(t, []string{"Vacation", "Morning"}, v.GetStringSlice("custom_tags"))

	require.NoError(t, RemoveCustomTag(v, "Vacation"))
	assert.Equal(t, []string{"Morning"}, v.GetStringSlice("custom_tags"))

	assert.Error(t, AddCustomTag(v, ""))
}

func TestPINSettings(t *testing.T) {
	v := newTestViper(t)

	assert.Error(t, SetPIN(v, "123"), "pin length is fixed")
	require.NoError(t, SetPIN(v, "1234"))
	assert.True(t, v.GetBool("security.pin_enabled"))
	assert.True(t, VerifyPIN("1234", v.GetString("security.pin_hash")))

	require.NoError(t, DisablePIN(v))
	assert.False(t, v.GetBool("security.pin_enabled"))
	assert.Empty(t, v.GetString("security.pin_hash"))
}

func TestRenderDefaultTOML(t *testing.T) {
	out := RenderDefaultTOML()
	assert.True(t, strings.Contains(out, "data_dir"))
	assert.True(t, strings.Contains(out, "[security]"))
	assert.True(t, strings.Contains(out, "pin_enabled = false"))
}
