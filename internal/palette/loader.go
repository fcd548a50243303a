package palette

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

// builtinFS holds the palettes shipped with the game.
//
//go:embed *.json
var builtinFS embed.FS

// DefaultFile is the name of the built-in palette.
const DefaultFile = "palette.json"

// Load reads the named scheme from fsys and parses it into a Palette.
func Load(fsys fs.FS, name string) (*Palette, error) {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read palette %s: %w", name, err)
	}

	var s Scheme
	if err := json.Unmarshal(content, &s); err != nil {
		return nil, fmt.Errorf("parse palette %s: %w", name, err)
	}

	return New(s)
}

// LoadDefault loads the built-in palette.
func LoadDefault() (*Palette, error) {
	return Load(builtinFS, DefaultFile)
}

// MustLoadDefault loads the built-in palette, panicking on error.
func MustLoadDefault() *Palette {
	p, err := LoadDefault()
	if err != nil {
		panic(err)
	}
	return p
}
