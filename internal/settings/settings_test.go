package settings

import (
	"testing"

	"calnotes/internal/i18n"
	"calnotes/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(storage.NewMemory())
	require.NoError(t, err)
	assert.Equal(t, i18n.TR, s.Locale)
	assert.Equal(t, Light, s.Theme)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(LocaleKey, []byte("de")))
	require.NoError(t, kv.Set(ThemeKey, []byte("sepia")))

	s, err := Load(kv)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestSetThenLoad(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, SetLocale(kv, i18n.EN))
	require.NoError(t, SetTheme(kv, Dark))

	s, err := Load(kv)
	require.NoError(t, err)
	assert.Equal(t, Settings{Locale: i18n.EN, Theme: Dark}, s)

	assert.Error(t, SetLocale(kv, "fr"))
	assert.Error(t, SetTheme(kv, "neon"))
}

func TestTheme_Toggle(t *testing.T) {
	assert.Equal(t, Dark, Light.Toggle())
	assert.Equal(t, Light, Dark.Toggle())
}
