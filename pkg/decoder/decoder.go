// Package decoder parses language files into generic key-value trees,
// dispatching on file extension. YAML, JSON and TOML are supported.
package decoder

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupported indicates a file extension with no registered decoder.
	ErrUnsupported = errors.New("decoder: unsupported file extension")

	// ErrMalformed indicates content the format decoder rejected.
	ErrMalformed = errors.New("decoder: malformed content")
)

// DefaultExtensions lists the recognized language file extensions in
// lookup order.
var DefaultExtensions = []string{".yaml", ".yml", ".json", ".toml"}

// Recognized reports whether ext has a registered decoder. The comparison
// is case-insensitive and tolerates a missing leading dot.
func Recognized(ext string) bool {
	return slices.Contains(DefaultExtensions, normalizeExt(ext))
}

// Decode parses data according to the extension of path and returns the
// nested key-value structure it encodes.
func Decode(path string, data []byte) (map[string]any, error) {
	ext := normalizeExt(filepath.Ext(path))

	var out map[string]any
	var err error

	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &out)
	case ".json":
		err = json.Unmarshal(data, &out)
	case ".toml":
		err = toml.Unmarshal(data, &out)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %s", ErrMalformed, path, err)
	}

	return out, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}
