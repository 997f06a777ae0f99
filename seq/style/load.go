package style

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Load reads a TOML style file over the defaults, so a file only needs to
// name the parameters it changes. Unknown keys are rejected: a typo in a
// style file should fail loudly, not silently fall back to a default.
func Load(path string) (Style, error) {
	st := Default()
	meta, err := toml.DecodeFile(path, &st)
	if err != nil {
		return Style{}, fmt.Errorf("style file %s: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return Style{}, fmt.Errorf("style file %s: unknown key %q", path, undec[0].String())
	}
	return st, nil
}
