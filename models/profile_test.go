package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileNormalize(t *testing.T) {
	p := UserProfile{
		Height:           " 180 ",
		StylePreferences: []StylePreference{StyleModern, "Gothic", StyleClassic, StyleModern},
		FavoriteColors:   []string{" navy", "", "olive "},
	}
	out := p.Normalize()
	assert.Equal(t, "180", out.Height)
	assert.Equal(t, []StylePreference{StyleModern, StyleClassic}, out.StylePreferences)
	assert.Equal(t, []string{"navy", "olive"}, out.FavoriteColors)
	assert.False(t, out.HasPhoto())
}

func TestProfileValidation(t *testing.T) {
	v := NewValidator()
	ok := UserProfile{StylePreferences: []StylePreference{StyleBohemian}}
	assert.NoError(t, v.Struct(ok))

	bad := UserProfile{StylePreferences: []StylePreference{"Gothic"}}
	assert.Error(t, v.Struct(bad))
}
