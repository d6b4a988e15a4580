package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath_MinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5, Max(2, 5))
	assert.Equal(float32(-1.5), Min(float32(-1.5), 3))
	assert.Equal(int16(7), Max(int16(-7), 7))
}

func TestMath_Abs(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(3, Abs(-3))
	assert.Equal(3, Abs(3))
	assert.Equal(float32(0.25), Abs(float32(-0.25)))
	assert.Equal(int16(256), Abs(int16(-256)))
}

func TestMath_InRange(t *testing.T) {
	assert := assert.New(t)

	assert.True(InRange(-256, -256, 255))
	assert.True(InRange(255, -256, 255))
	assert.False(InRange(256, -256, 255))
	assert.False(InRange(-257, -256, 255))
}
