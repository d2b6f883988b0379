// Engine tuning config, read from an optional engine.toml not covered
// by UCI options. Grounded on frankkopp-FrankyGo and Mgrdich-TermChess,
// both of which configure via BurntSushi/toml.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Tuning holds engine tunables not exposed over the UCI protocol.
type Tuning struct {
	TTSizeMiB       int `toml:"tt_size_mib"`
	ContemptCP      int `toml:"contempt_cp"`
	MaxSearchDepth  int `toml:"max_search_depth"`
	QuiescenceDepth int `toml:"quiescence_depth_cap"`
}

// DefaultTuning returns the built-in defaults used when no engine.toml
// is present.
func DefaultTuning() Tuning {
	return Tuning{
		TTSizeMiB:       128,
		ContemptCP:      -10,
		MaxSearchDepth:  64,
		QuiescenceDepth: 32,
	}
}

// LoadTuning reads engine.toml at path, falling back to DefaultTuning
// if the file does not exist. A malformed file is a typed parse error,
// the same treatment a malformed FEN gets.
func LoadTuning(path string) (Tuning, error) {
	tuning := DefaultTuning()
	if _, err := toml.DecodeFile(path, &tuning); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return tuning, nil
		}
		return Tuning{}, fmt.Errorf("config: malformed %s: %w", path, err)
	}
	return tuning, nil
}
