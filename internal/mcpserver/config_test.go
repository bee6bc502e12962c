package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvBool(t *testing.T) {
	t.Setenv("ASYNCAPITOOLS_TEST_BOOL", "false")
	assert.False(t, envBool("ASYNCAPITOOLS_TEST_BOOL", true))

	t.Setenv("ASYNCAPITOOLS_TEST_BOOL", "not-a-bool")
	assert.True(t, envBool("ASYNCAPITOOLS_TEST_BOOL", true))

	assert.True(t, envBool("ASYNCAPITOOLS_TEST_BOOL_UNSET", true))
}

func TestEnvInt(t *testing.T) {
	t.Setenv("ASYNCAPITOOLS_TEST_INT", "42")
	assert.Equal(t, 42, envInt("ASYNCAPITOOLS_TEST_INT", 7))

	t.Setenv("ASYNCAPITOOLS_TEST_INT", "-3")
	assert.Equal(t, 7, envInt("ASYNCAPITOOLS_TEST_INT", 7))

	t.Setenv("ASYNCAPITOOLS_TEST_INT", "zero")
	assert.Equal(t, 7, envInt("ASYNCAPITOOLS_TEST_INT", 7))
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("ASYNCAPITOOLS_TEST_DUR", "30s")
	assert.Equal(t, 30*time.Second, envDuration("ASYNCAPITOOLS_TEST_DUR", time.Minute))

	t.Setenv("ASYNCAPITOOLS_TEST_DUR", "eventually")
	assert.Equal(t, time.Minute, envDuration("ASYNCAPITOOLS_TEST_DUR", time.Minute))
}

func TestLoadConfigDefaults(t *testing.T) {
	c := loadConfig()
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(4*1024*1024), c.MaxInlineSize)
}
