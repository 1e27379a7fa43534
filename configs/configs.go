// Package configs ships the example options file.
package configs

import (
	_ "embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed ppl_compile_opts.toml.example
var Example []byte

// WriteExample writes Example to path, creating parent directories.
// An existing file is only replaced when force is set.
func WriteExample(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, fs.ErrExist)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create options directory: %w", err)
	}
	if err := writeFile(path, Example); err != nil {
		return fmt.Errorf("write example options: %w", err)
	}
	return nil
}
