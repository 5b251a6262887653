package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSiteGate_Disabled(t *testing.T) {
	gate := NewSiteGate("")

	assert.False(t, gate.Enabled())
	assert.NoError(t, gate.Verify("anything"))
	assert.NoError(t, gate.Verify(""))
}

func TestSiteGate_Enabled(t *testing.T) {
	gate := NewSiteGate("la-clave")

	assert.True(t, gate.Enabled())
	assert.NoError(t, gate.Verify("la-clave"))
	assert.ErrorIs(t, gate.Verify("otra"), ErrInvalidSitePassword)
	assert.ErrorIs(t, gate.Verify(""), ErrInvalidSitePassword)
}
