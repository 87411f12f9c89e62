package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// GeneratorDefaults are the options applied when a generate request leaves
// a field unset.
type GeneratorDefaults struct {
	Length           int  `toml:"length"`
	Lowercase        bool `toml:"lowercase"`
	Uppercase        bool `toml:"uppercase"`
	Digits           bool `toml:"digits"`
	Symbols          bool `toml:"symbols"`
	ExcludeAmbiguous bool `toml:"exclude_ambiguous"`
}

// DefaultGeneratorDefaults returns 16 characters with every class enabled
// and ambiguous characters kept.
func DefaultGeneratorDefaults() GeneratorDefaults {
	return GeneratorDefaults{
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// LoadGeneratorDefaults reads a TOML file on top of DefaultGeneratorDefaults.
// Keys missing from the file keep their default value. An empty path returns
// the defaults unchanged.
func LoadGeneratorDefaults(path string) (GeneratorDefaults, error) {
	d := DefaultGeneratorDefaults()
	if path == "" {
		return d, nil
	}

	md, err := toml.DecodeFile(path, &d)
	if err != nil {
		return GeneratorDefaults{}, fmt.Errorf("cannot decode generator config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return GeneratorDefaults{}, fmt.Errorf("unknown key %q in generator config %q", undecoded[0].String(), path)
	}

	return d, nil
}
