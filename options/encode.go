package options

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var Formats = []Format{FormatTOML, FormatJSON, FormatYAML}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Encode writes opts to w. Keys are the TOML schema keys in every format.
func Encode(w io.Writer, opts Options, f Format) error {
	switch f {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(opts)

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(opts)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(opts); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", string(f))
}
