package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToInt(t *testing.T) {
	assert.Equal(t, 42, StringToInt("42"))
	assert.Equal(t, 7, StringToInt(" 7 "))
	assert.Equal(t, 0, StringToInt("abc"))
	assert.Equal(t, 0, StringToInt(""))
	assert.Equal(t, -3, StringToInt("-3"))
}
