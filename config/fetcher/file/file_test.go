package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()

	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o600))
	}

	return fs
}

func TestFetcher_Fetch_MemFs(t *testing.T) {
	t.Parallel()

	fs := memFs(t, map[string]string{"/etc/app/config.yaml": "port: 8080\n"})

	fetcher, err := NewFetcher(fs, "/etc/app/../app/config.yaml")()
	require.NoError(t, err)
	assert.Equal(t, "/etc/app/config.yaml", fetcher.Path())

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, "port: 8080\n", string(data))
}

func TestFetcher_Fetch_OsFs(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("port = 8080\n"), 0o600))

	fetcher, err := NewFetcher(nil, configPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, "port = 8080\n", string(data))
}

func TestFetcher_Fetch_EmptyFile(t *testing.T) {
	t.Parallel()

	fs := memFs(t, map[string]string{"/empty.json": ""})

	fetcher, err := NewFetcher(fs, "/empty.json")()
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestNewFetcher_Errors(t *testing.T) {
	t.Parallel()

	fs := memFs(t, map[string]string{"/conf/config.yaml": "a: 1\n"})

	_, err := NewFetcher(fs, "/missing/config.yaml")()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stat file")
	assert.Contains(t, err.Error(), "missing")

	_, err = NewFetcher(fs, "/conf")()
	require.ErrorIs(t, err, ErrPathIsDirectory)
}

func TestFetcher_Fetch_CachedCopy(t *testing.T) {
	t.Parallel()

	fs := memFs(t, map[string]string{"/config.yaml": `version: "1.0"`})

	fetcher, err := NewFetcher(fs, "/config.yaml")()
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "/config.yaml", []byte(`version: "2.0"`), 0o600))

	first, err := fetcher.Fetch()
	require.NoError(t, err)

	first[0] = 'X'

	second, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, `version: "1.0"`, string(second))
}
