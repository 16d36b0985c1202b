package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunID(t *testing.T) {
	first, err := NewRunID()
	require.NoError(t, err)
	second, err := NewRunID()
	require.NoError(t, err)

	assert.Len(t, first, runIDSize)
	assert.NotEqual(t, first, second)
	assert.Regexp(t, "^[A-Za-z0-9]+$", first)
}
