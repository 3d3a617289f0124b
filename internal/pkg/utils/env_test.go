package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	assert.Equal(t, "fallback", GetEnvString("ABDM_TEST_UNSET_STRING", "fallback"))

	t.Setenv("ABDM_TEST_STRING", " queue ")
	assert.Equal(t, " queue ", GetEnvString("ABDM_TEST_STRING", "fallback"))

	t.Setenv("ABDM_TEST_EMPTY_STRING", "")
	assert.Equal(t, "", GetEnvString("ABDM_TEST_EMPTY_STRING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	assert.Equal(t, 60, GetEnvInt("ABDM_TEST_UNSET_INT", 60))

	t.Setenv("ABDM_TEST_INT", " 45 ")
	assert.Equal(t, 45, GetEnvInt("ABDM_TEST_INT", 60))

	t.Setenv("ABDM_TEST_BAD_INT", "sixty")
	assert.Equal(t, 60, GetEnvInt("ABDM_TEST_BAD_INT", 60))
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("ABDM_TEST_FLOAT", "2.5")
	assert.Equal(t, 2.5, GetEnvFloat("ABDM_TEST_FLOAT", 5))

	t.Setenv("ABDM_TEST_BAD_FLOAT", "fast")
	assert.Equal(t, 5.0, GetEnvFloat("ABDM_TEST_BAD_FLOAT", 5))
}
