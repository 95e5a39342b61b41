package testutil

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filemanip/internal/domain"
)

func TestLogger(t *testing.T) {
	logger := Logger()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestMemFS(t *testing.T) {
	memFs, adapter := MemFS(t, map[string]string{"/a.txt": "alpha"}, domain.WriteModeDirect)

	assert.Equal(t, domain.WriteModeDirect, adapter.Mode())
	assert.Equal(t, "alpha", ReadString(t, memFs, "/a.txt"))
	assert.True(t, Exists(t, memFs, "/a.txt"))
	assert.False(t, Exists(t, memFs, "/b.txt"))

	require.NoError(t, adapter.WriteFile("/a.txt", []byte("beta")))
	assert.Equal(t, "beta", ReadString(t, memFs, "/a.txt"))
}
