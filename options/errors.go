package options

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOpen classifies failures to open or read the options file.
	ErrOpen = errors.New("cannot open options file")
	// ErrParse classifies documents that do not match the schema.
	ErrParse = errors.New("cannot parse options")
	// ErrNotFound is returned by Locate when no candidate location holds a file.
	ErrNotFound = errors.New("options file not found")
)

type ErrorKind int

const (
	KindOpen ErrorKind = iota + 1
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindParse:
		return "parse"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// LoadError is the single error type returned by the loader.
// Use errors.Is(err, ErrOpen) or errors.Is(err, ErrParse) to tell the kinds apart.
type LoadError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s options: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s options %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrOpen:
		return e.Kind == KindOpen
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

// MissingKeyError lists required tables or keys absent from a document, in dotted form.
type MissingKeyError struct {
	Keys []string
}

func (e *MissingKeyError) Error() string {
	return "missing required keys: " + strings.Join(e.Keys, ", ")
}
