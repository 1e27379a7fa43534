package options

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// Tables that fall back to their defaults when absent from the document.
var optionalTables = map[string]struct{}{
	"system_vars": {},
	"limits":      {},
}

// LoadFromPath reads and decodes the options file at path.
// The loader never validates values: see Validate.
func LoadFromPath(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, &LoadError{Kind: KindOpen, Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Options{}, &LoadError{Kind: KindOpen, Path: path, Err: fmt.Errorf("read: %w", err)}
	}

	opts, err := Parse(string(data))
	if err != nil {
		return Options{}, &LoadError{Kind: KindParse, Path: path, Err: err}
	}
	return opts, nil
}

// Parse decodes a TOML document into Options.
// Every key of a table that is present is required; only whole optional tables may be omitted.
func Parse(doc string) (Options, error) {
	opts := Options{
		SystemVars: SystemVars{},
		Limits:     DefaultLimits(),
	}

	md, err := toml.Decode(doc, &opts)
	if err != nil {
		return Options{}, err
	}

	// The decoder has no notion of required keys and wraps negative values into uint.
	var raw map[string]any
	if _, err := toml.Decode(doc, &raw); err != nil {
		return Options{}, err
	}
	if err := checkSchema(raw); err != nil {
		return Options{}, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Warn().Strs("keys", keys).Msg("unknown options keys ignored")
	}
	return opts, nil
}

// Load resolves the options file location with Locate and loads it.
func Load() (Options, error) {
	path, err := Locate()
	if err != nil {
		return Options{}, err
	}
	return LoadFromPath(path)
}

// MustLoadFromPath is like LoadFromPath but panics on error.
func MustLoadFromPath(path string) Options {
	opts, err := LoadFromPath(path)
	if err != nil {
		panic(err)
	}
	return opts
}

// MustLoad is like Load but panics on error.
func MustLoad() Options {
	opts, err := Load()
	if err != nil {
		panic(err)
	}
	return opts
}

func checkSchema(raw map[string]any) error {
	var missing []string

	root := reflect.TypeOf(Options{})
	for i := 0; i < root.NumField(); i++ {
		table := root.Field(i)
		tableName := tomlName(table)

		values, ok := raw[tableName].(map[string]any)
		if !ok {
			if _, optional := optionalTables[tableName]; !optional {
				missing = append(missing, tableName)
			}
			continue
		}

		for j := 0; j < table.Type.NumField(); j++ {
			field := table.Type.Field(j)
			key := tomlName(field)

			v, ok := values[key]
			if !ok {
				missing = append(missing, tableName+"."+key)
				continue
			}
			if n, isInt := v.(int64); isInt && n < 0 && field.Type.Kind() == reflect.Uint {
				return fmt.Errorf("%s.%s: %d is out of range for %s", tableName, key, n, field.Type)
			}
		}
	}

	if len(missing) > 0 {
		return &MissingKeyError{Keys: missing}
	}
	return nil
}

func tomlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
	if name == "" {
		return f.Name
	}
	return name
}
