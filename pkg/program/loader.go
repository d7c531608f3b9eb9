package program

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/planforge/pkg/errors"
)

// Loader reads a generation request from a program file.
type Loader interface {
	// Load reads and validates the request at path.
	Load(path string) (*Request, error)
	// Supports reports whether this loader handles the given filename.
	Supports(filename string) bool
	// Format returns the format identifier (e.g. "toml").
	Format() string
}

// DefaultLoaders holds the loaders in detection order.
var DefaultLoaders = []Loader{&TOMLLoader{}, &JSONLoader{}}

// Detect finds a loader that supports the given file path.
// Returns an error naming the file when no loader matches.
func Detect(path string, loaders ...Loader) (Loader, error) {
	name := filepath.Base(path)
	for _, l := range loaders {
		if l.Supports(name) {
			return l, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported program file: %s", name)
}

// LoadFile reads a program file, picking the loader from the extension.
func LoadFile(path string) (*Request, error) {
	l, err := Detect(path, DefaultLoaders...)
	if err != nil {
		return nil, err
	}
	return l.Load(path)
}

// TOMLLoader parses TOML program files, the primary input format.
type TOMLLoader struct{}

func (l *TOMLLoader) Format() string { return "toml" }

func (l *TOMLLoader) Supports(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".toml")
}

func (l *TOMLLoader) Load(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var req Request
	if err := toml.Unmarshal(data, &req); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// JSONLoader parses JSON program files, for callers that already speak
// the plan wire format.
type JSONLoader struct{}

func (l *JSONLoader) Format() string { return "json" }

func (l *JSONLoader) Supports(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".json")
}

func (l *JSONLoader) Load(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}
