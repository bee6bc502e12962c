package mcpserver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecInputValidation(t *testing.T) {
	_, err := specInput{}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content")

	_, err = specInput{File: "a.yaml", Content: "asyncapi: 2.0.0"}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content")
}

func TestSpecInputInlineSizeLimit(t *testing.T) {
	orig := cfg.MaxInlineSize
	cfg.MaxInlineSize = 8
	defer func() { cfg.MaxInlineSize = orig }()

	_, err := specInput{Content: testSpecYAML}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestSpecCacheContentHit(t *testing.T) {
	specCache.reset()
	defer specCache.reset()

	first, err := specInput{Content: testSpecYAML}.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, specCache.size())

	second, err := specInput{Content: testSpecYAML}.resolve()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSpecCacheFileInvalidatedOnChange(t *testing.T) {
	specCache.reset()
	defer specCache.reset()

	specPath := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte(testSpecYAML), 0o644))

	first, err := specInput{File: specPath}.resolve()
	require.NoError(t, err)

	// Rewrite with a bumped mtime; the key includes mtime so the old entry
	// no longer matches.
	require.NoError(t, os.WriteFile(specPath, []byte(testSpecYAML), 0o644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(specPath, future, future))

	second, err := specInput{File: specPath}.resolve()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestSpecCacheEviction(t *testing.T) {
	specCache.reset()
	defer specCache.reset()

	origMax := specCache.maxSize
	specCache.maxSize = 2
	defer func() { specCache.maxSize = origMax }()

	specCache.putWithTTL("a", nil, time.Minute)
	specCache.putWithTTL("b", nil, time.Minute)
	specCache.putWithTTL("c", nil, time.Minute)
	assert.Equal(t, 2, specCache.size())
}

func TestSpecCacheSweepRemovesExpired(t *testing.T) {
	specCache.reset()
	defer specCache.reset()

	specCache.putWithTTL("stale", nil, -time.Second)
	specCache.putWithTTL("fresh", nil, time.Minute)
	specCache.sweep()
	assert.Equal(t, 1, specCache.size())
}

func TestSanitizeError(t *testing.T) {
	err := os.ErrNotExist
	assert.Equal(t, err.Error(), sanitizeError(err))

	_, statErr := os.Stat("/home/someone/secrets/spec.yaml")
	require.Error(t, statErr)
	assert.NotContains(t, sanitizeError(statErr), "/home/someone")
	assert.Empty(t, sanitizeError(nil))
}
