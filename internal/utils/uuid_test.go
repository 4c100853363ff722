package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate_ParsesAsUUID(t *testing.T) {
	g := NewUUIDGenerator()

	value := g.Generate()
	_, err := uuid.Parse(value)
	require.NoError(t, err)
}

func TestUUIDGenerator_Generate_Unique(t *testing.T) {
	g := NewUUIDGenerator()

	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		value := g.Generate()
		_, duplicate := seen[value]
		assert.False(t, duplicate, "generated value %q twice", value)
		seen[value] = struct{}{}
	}
}
