package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ORDERCALC_TEST_VALUE=42\n"), 0644))
	t.Setenv("ENV_PATH", path)
	t.Cleanup(func() { os.Unsetenv("ORDERCALC_TEST_VALUE") })

	require.NoError(t, LoadDotEnv("", "unused"))
	assert.Equal(t, 42, Int("ORDERCALC_TEST_VALUE", 0))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	assert.NoError(t, LoadDotEnv("prod", "unused"))
	assert.Error(t, LoadDotEnv("local", "unused"))
}

func TestString_Int(t *testing.T) {
	t.Setenv("ORDERCALC_TEST_STR", "skip")
	t.Setenv("ORDERCALC_TEST_BAD", "ten")

	assert.Equal(t, "skip", String("ORDERCALC_TEST_STR", "abort"))
	assert.Equal(t, "abort", String("ORDERCALC_TEST_UNSET", "abort"))
	assert.Equal(t, 7, Int("ORDERCALC_TEST_BAD", 7))
	assert.Equal(t, 7, Int("ORDERCALC_TEST_UNSET", 7))
}
