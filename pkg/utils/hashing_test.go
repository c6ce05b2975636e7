package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, ComparePasswords(hash, "correct horse battery staple"))
	assert.Error(t, ComparePasswords(hash, "wrong password"))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("samepassword")
	assert.NoError(t, err)
	second, err := HashPassword("samepassword")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
