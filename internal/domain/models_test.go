package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMnemonic(t *testing.T) {
	cases := map[string]string{
		"_Gaussian Blur...": "Gaussian Blur...",
		"_E_xposure...":     "Exposure...",
		"Save__As":          "Save_As",
		"  Cu_t  ":          "Cut",
		"_":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripMnemonic(in), in)
	}
}

func TestActivate(t *testing.T) {
	calls := 0
	a := &Action{Name: "x", Callback: func(*Action) { calls++ }}

	assert.False(t, a.Activate(), "insensitive actions are not run")
	assert.Zero(t, calls)

	a.Sensitive = true
	assert.True(t, a.Activate())
	assert.Equal(t, 1, calls)

	var missing *Action
	assert.False(t, missing.Activate())
}

func TestActivateToggle(t *testing.T) {
	a := &Action{Name: "view-show-grid", Toggle: true, Sensitive: true}
	a.Activate()
	assert.True(t, a.Active)
	a.Activate()
	assert.False(t, a.Active)
}
