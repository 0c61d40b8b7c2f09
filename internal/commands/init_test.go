package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labpay-dev/labpay/internal/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir))

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, "pain.001.001.03", cfg.Schema)

	for _, d := range []string{"banks", "export", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "missing %s", d)
		assert.True(t, info.IsDir())
	}

	_, err = os.Stat(filepath.Join(dir, "banks", "bank-directory.csv"))
	assert.NoError(t, err)
}

func TestRunInitRefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir))
	assert.Error(t, runInit(dir), "second init must not overwrite settings")
}
