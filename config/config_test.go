package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEmailMode(t *testing.T) {
	t.Run("Explicit mode wins", func(t *testing.T) {
		assert.Equal(t, EmailModeLogged, resolveEmailMode("logged", "re_test_key"))
		assert.Equal(t, EmailModeDisabled, resolveEmailMode("disabled", ""))
		assert.Equal(t, EmailModeResend, resolveEmailMode("RESEND", ""))
	})

	t.Run("Inferred from credentials", func(t *testing.T) {
		assert.Equal(t, EmailModeResend, resolveEmailMode("", "re_test_key"))
		assert.Equal(t, EmailModeLogged, resolveEmailMode("", ""))
	})

	t.Run("Unknown mode falls back to inference", func(t *testing.T) {
		assert.Equal(t, EmailModeResend, resolveEmailMode("smtp", "re_test_key"))
		assert.Equal(t, EmailModeLogged, resolveEmailMode("smtp", ""))
	})
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	t.Setenv("TEST_INT", "30")
	t.Setenv("TEST_INT_BAD", "abc")
	t.Setenv("TEST_BOOL", "yes")
	t.Setenv("TEST_BOOL_BAD", "maybe")

	assert.Equal(t, "value", getEnv("TEST_STR", "fallback"))
	assert.Equal(t, "fallback", getEnv("TEST_STR_UNSET", "fallback"))

	assert.Equal(t, 30, getEnvInt("TEST_INT", 15))
	assert.Equal(t, 15, getEnvInt("TEST_INT_BAD", 15))
	assert.Equal(t, 15, getEnvInt("TEST_INT_UNSET", 15))

	assert.True(t, getEnvBool("TEST_BOOL", false))
	assert.False(t, getEnvBool("TEST_BOOL_BAD", false))
	assert.True(t, getEnvBool("TEST_BOOL_UNSET", true))
}
