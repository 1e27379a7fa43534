package options_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antonboom/ppl-compile-opts/options"
	optionsmocks "github.com/Antonboom/ppl-compile-opts/options/mocks"
)

func touch(t *testing.T, path string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(scenarioDoc), 0o600))
}

func TestLocator(t *testing.T) {
	wd, configDir, home := t.TempDir(), t.TempDir(), t.TempDir()

	inWD := filepath.Join(wd, options.FileName)
	inConfigDir := filepath.Join(configDir, options.DirName, options.FileName)
	inHome := filepath.Join(home, options.DirName, options.FileName)

	expectDirs := func(env *optionsmocks.MockEnvironment) {
		env.EXPECT().Getwd().Return(wd, nil)
		env.EXPECT().UserConfigDir().Return(configDir, nil)
		env.EXPECT().UserHomeDir().Return(home, nil)
	}

	t.Run("environment variable wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		env := optionsmocks.NewMockEnvironment(ctrl)
		env.EXPECT().LookupEnv(options.EnvVar).Return("/not/checked/opts.toml", true)

		path, err := options.NewLocator(env).Locate()
		require.NoError(t, err)
		assert.Equal(t, "/not/checked/opts.toml", path)
	})

	t.Run("nothing found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		env := optionsmocks.NewMockEnvironment(ctrl)
		env.EXPECT().LookupEnv(options.EnvVar).Return("", true)
		expectDirs(env)

		_, err := options.NewLocator(env).Locate()
		require.Error(t, err)
		assert.ErrorIs(t, err, options.ErrNotFound)
		assert.ErrorIs(t, err, options.ErrOpen)
		assert.Contains(t, err.Error(), inWD)
		assert.Contains(t, err.Error(), inHome)
	})

	t.Run("home directory", func(t *testing.T) {
		touch(t, inHome)

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		env := optionsmocks.NewMockEnvironment(ctrl)
		env.EXPECT().LookupEnv(options.EnvVar).Return("", false)
		expectDirs(env)

		path, err := options.NewLocator(env).Locate()
		require.NoError(t, err)
		assert.Equal(t, inHome, path)
	})

	t.Run("user config directory before home", func(t *testing.T) {
		touch(t, inConfigDir)

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		env := optionsmocks.NewMockEnvironment(ctrl)
		env.EXPECT().LookupEnv(options.EnvVar).Return("", false)
		expectDirs(env)

		path, err := options.NewLocator(env).Locate()
		require.NoError(t, err)
		assert.Equal(t, inConfigDir, path)
	})

	t.Run("working directory first", func(t *testing.T) {
		touch(t, inWD)

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		env := optionsmocks.NewMockEnvironment(ctrl)
		env.EXPECT().LookupEnv(options.EnvVar).Return("", false)
		expectDirs(env)

		path, err := options.NewLocator(env).Locate()
		require.NoError(t, err)
		assert.Equal(t, inWD, path)
	})
}

func TestLocator_UnresolvableDirsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	home := t.TempDir()
	inHome := filepath.Join(home, options.DirName, options.FileName)
	touch(t, inHome)

	env := optionsmocks.NewMockEnvironment(ctrl)
	env.EXPECT().LookupEnv(options.EnvVar).Return("", false)
	env.EXPECT().Getwd().Return("", errors.New("getwd: no such file or directory"))
	env.EXPECT().UserConfigDir().Return("", errors.New("neither $XDG_CONFIG_HOME nor $HOME are defined"))
	env.EXPECT().UserHomeDir().Return(home, nil)

	l := options.NewLocator(env)
	path, err := l.Locate()
	require.NoError(t, err)
	assert.Equal(t, inHome, path)
}

func TestLocator_DirectoryIsNotAFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wd := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(wd, options.FileName), 0o755))

	env := optionsmocks.NewMockEnvironment(ctrl)
	env.EXPECT().LookupEnv(options.EnvVar).Return("", false)
	env.EXPECT().Getwd().Return(wd, nil)
	env.EXPECT().UserConfigDir().Return("", errors.New("no config dir"))
	env.EXPECT().UserHomeDir().Return("", errors.New("no home"))

	_, err := options.NewLocator(env).Locate()
	assert.ErrorIs(t, err, options.ErrNotFound)
}
