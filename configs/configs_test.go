package configs_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antonboom/ppl-compile-opts/configs"
	"github.com/Antonboom/ppl-compile-opts/options"
)

func TestExample(t *testing.T) {
	opts, err := options.Parse(string(configs.Example))
	require.NoError(t, err)
	require.NoError(t, options.Validate(opts))
	assert.EqualValues(t, 2047, opts.Dac.RFMax)
}

func TestWriteExample(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", options.DirName, options.FileName)

	require.NoError(t, configs.WriteExample(dest, false))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, configs.Example, data)

	t.Run("refuses to overwrite", func(t *testing.T) {
		require.NoError(t, os.WriteFile(dest, []byte("# mine\n"), 0o600))

		err := configs.WriteExample(dest, false)
		require.ErrorIs(t, err, fs.ErrExist)

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "# mine\n", string(data))
	})

	t.Run("force overwrites", func(t *testing.T) {
		require.NoError(t, configs.WriteExample(dest, true))

		opts, err := options.LoadFromPath(dest)
		require.NoError(t, err)
		assert.EqualValues(t, 100, opts.Clock.ClockPeriodNS)
	})
}
