package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podo/pkg/storage"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	s := DefaultSettings()

	assert.NoError(t, s.Validate())
	assert.Equal(t, 25, s.FocusMinutes)
	assert.Equal(t, 5, s.ShortBreakMinutes)
	assert.Equal(t, 15, s.LongBreakMinutes)
}

func TestValidateRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"focus too low", func(s *Settings) { s.FocusMinutes = 0 }},
		{"focus too high", func(s *Settings) { s.FocusMinutes = 61 }},
		{"short break too low", func(s *Settings) { s.ShortBreakMinutes = 0 }},
		{"short break too high", func(s *Settings) { s.ShortBreakMinutes = 31 }},
		{"long break too low", func(s *Settings) { s.LongBreakMinutes = 4 }},
		{"long break too high", func(s *Settings) { s.LongBreakMinutes = 61 }},
		{"unknown theme", func(s *Settings) { s.Theme = "solarized" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	s := DefaultSettings()
	s.FocusMinutes = 60
	s.ShortBreakMinutes = 1
	s.LongBreakMinutes = 5

	assert.NoError(t, s.Validate())
}

func TestSaveSettingsMirrorsToStorage(t *testing.T) {
	mem := storage.NewMemory()
	s := DefaultSettings()

	require.NoError(t, SaveSettings(mem, s))

	data, ok, err := mem.Read(SettingsStorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(data), `"focus_minutes":25`)
}
