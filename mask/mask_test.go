package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSet(t *testing.T) {
	assert.True(t, IsSet(0b1101_1000, I1))
	assert.True(t, IsSet(0b1101_1000, I2))
	assert.False(t, IsSet(0b1101_1000, I3))
	assert.True(t, IsSet(0b1101_1000, I4))
	assert.True(t, IsSet(0b1101_1000, I5))
	assert.False(t, IsSet(0b1101_1000, I6))
	assert.False(t, IsSet(0b1101_1000, I7))
	assert.False(t, IsSet(0b1101_1000, I8))
}
