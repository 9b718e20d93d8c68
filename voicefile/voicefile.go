// Package voicefile reads voice descriptions from JSON documents.
package voicefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gordonklaus/additive"
)

// Ext is the extension voice files must carry.
const Ext = ".json"

var ErrNotJSON = errors.New("voice file must have a " + Ext + " extension")

// Decode reads one voice from r and validates it.
func Decode(r io.Reader) (*additive.Voice, error) {
	var v additive.Voice
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("decode voice: %w", err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Load reads and validates the voice file at path.
func Load(path string) (*additive.Voice, error) {
	if filepath.Ext(path) != Ext {
		return nil, fmt.Errorf("%s: %w", path, ErrNotJSON)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	v, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Stem returns the file name of path without directory or extension, which
// is the name rendered output is saved under.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
