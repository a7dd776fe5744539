package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vowdirectory/internal/platform/constants"
)

func TestClientOptions(t *testing.T) {
	options, err := clientOptions("redis://:secret@cache.internal:6380/2")
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", options.Addr)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, 2, options.DB)
	assert.Equal(t, constants.AppName, options.ClientName)
	assert.Equal(t, poolSize, options.PoolSize)
	assert.Equal(t, ioTimeout, options.ReadTimeout)
}

func TestClientOptions_InvalidURL(t *testing.T) {
	_, err := clientOptions("http://cache.internal")
	assert.ErrorContains(t, err, "redis: invalid URL")
}
