package options

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/locate_generated.go -package optionsmocks Environment

const (
	// EnvVar names the environment variable holding an explicit options file path.
	EnvVar = "PPL_COMPILE_OPTS"

	FileName = "ppl_compile_opts.toml"
	DirName  = "ppl-compile-opts"
)

type Environment interface {
	LookupEnv(key string) (string, bool)
	Getwd() (string, error)
	UserConfigDir() (string, error)
	UserHomeDir() (string, error)
}

type osEnvironment struct{}

func (osEnvironment) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (osEnvironment) Getwd() (string, error)              { return os.Getwd() }
func (osEnvironment) UserConfigDir() (string, error)      { return os.UserConfigDir() }
func (osEnvironment) UserHomeDir() (string, error)        { return os.UserHomeDir() }

// OSEnvironment returns the Environment of the running process.
func OSEnvironment() Environment {
	return osEnvironment{}
}

// Locator finds the options file. Search order:
//
//  1. $PPL_COMPILE_OPTS, taken as is;
//  2. ppl_compile_opts.toml in the working directory;
//  3. ppl-compile-opts/ppl_compile_opts.toml under the user config directory;
//  4. ppl-compile-opts/ppl_compile_opts.toml under the home directory.
type Locator struct {
	env Environment
}

func NewLocator(env Environment) *Locator {
	return &Locator{env: env}
}

// Candidates returns the well-known locations in search order, skipping unresolvable directories.
func (l *Locator) Candidates() []string {
	var candidates []string

	if wd, err := l.env.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, FileName))
	} else {
		log.Debug().Err(err).Msg("skip working directory")
	}

	if dir, err := l.env.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, DirName, FileName))
	} else {
		log.Debug().Err(err).Msg("skip user config directory")
	}

	if home, err := l.env.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DirName, FileName))
	} else {
		log.Debug().Err(err).Msg("skip home directory")
	}

	return candidates
}

// Locate returns the path of the options file to load.
// A non-empty $PPL_COMPILE_OPTS wins even when the file does not exist, so the open error names it.
func (l *Locator) Locate() (string, error) {
	if path, ok := l.env.LookupEnv(EnvVar); ok && path != "" {
		log.Debug().Str("path", path).Str("source", "environment").Msg("options file located")
		return path, nil
	}

	candidates := l.Candidates()
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			log.Debug().Str("path", path).Msg("options file candidate missing")
			continue
		}
		log.Debug().Str("path", path).Str("source", "search").Msg("options file located")
		return path, nil
	}

	return "", &LoadError{
		Kind: KindOpen,
		Err:  fmt.Errorf("%w (searched: %s)", ErrNotFound, strings.Join(candidates, ", ")),
	}
}

// Locate resolves the options file location for the running process.
func Locate() (string, error) {
	return NewLocator(OSEnvironment()).Locate()
}
