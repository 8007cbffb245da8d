package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PAYWAVE_TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("PAYWAVE_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("PAYWAVE_TEST_MISSING", "fallback"))

	t.Setenv("PAYWAVE_TEST_EMPTY", "")
	assert.Equal(t, "fallback", GetEnv("PAYWAVE_TEST_EMPTY", "fallback"))
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("PAYWAVE_TEST_INT", "42")
	assert.Equal(t, 42, GetIntEnv("PAYWAVE_TEST_INT", 7))

	t.Setenv("PAYWAVE_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetIntEnv("PAYWAVE_TEST_INT", 7))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("PAYWAVE_TEST_DUR", "250ms")
	assert.Equal(t, 250*time.Millisecond, GetDurationEnv("PAYWAVE_TEST_DUR", time.Second))

	t.Setenv("PAYWAVE_TEST_DUR", "soon")
	assert.Equal(t, time.Second, GetDurationEnv("PAYWAVE_TEST_DUR", time.Second))
}
